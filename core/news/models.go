package news

import (
	"time"

	"github.com/trezcool/darasa/core"
)

type News struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	PublishedDate  time.Time `json:"publishedDate"`
	AuthorID       int       `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Category       string    `json:"category"`
}

// NewNews contains information needed to publish a news post.
// AuthorID is set from the session.
type NewNews struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	AuthorID int    `json:"authorId"`
}

func (nn *NewNews) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Content = core.CleanString(nn.Content)
	nn.Category = core.CleanString(nn.Category)
	return core.Validate.Struct(nn)
}
