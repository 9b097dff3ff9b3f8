package dummygw

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/news"
)

var _ news.Gateway = (*DB)(nil)

func (db *DB) QueryAllNews() ([]news.News, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	items := make([]news.News, 0, len(db.news))
	for _, item := range db.news {
		items = append(items, *item)
	}
	// newest first
	sort.Slice(items, func(i, j int) bool { return items[i].PublishedDate.After(items[j].PublishedDate) })
	return items, nil
}

func (db *DB) CreateNews(nn news.NewNews) (news.News, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var author string
	if rec, ok := db.users[nn.AuthorID]; ok {
		author = rec.Username
	}
	item := &news.News{
		ID:             uuid.NewString(),
		Title:          nn.Title,
		Content:        nn.Content,
		PublishedDate:  time.Now().UTC(),
		AuthorID:       nn.AuthorID,
		AuthorUsername: author,
		Category:       nn.Category,
	}
	db.news[item.ID] = item
	return *item, nil
}
