package session

import (
	"github.com/trezcool/darasa/core/chat"
	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/payment"
	"github.com/trezcool/darasa/core/reactive"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
)

// Store holds the last-fetched snapshot of each entity collection.
// Collections are replaced wholesale on reload (Cell.Set is atomic and
// triggers a single recomputation pass of dependent views), except
// conversations: creation appends to the collection and messages are
// appended to the selected conversation in place.
type Store struct {
	Users         *reactive.Cell[[]user.User]
	Students      *reactive.Cell[[]student.Student]
	Conversations *reactive.Cell[[]chat.Conversation]
	Payments      *reactive.Cell[[]payment.Payment]
	News          *reactive.Cell[[]news.News]
}

func NewStore() *Store {
	return &Store{
		Users:         reactive.NewCell[[]user.User](nil),
		Students:      reactive.NewCell[[]student.Student](nil),
		Conversations: reactive.NewCell[[]chat.Conversation](nil),
		Payments:      reactive.NewCell[[]payment.Payment](nil),
		News:          reactive.NewCell[[]news.News](nil),
	}
}

// Clear drops every collection (logout).
func (s *Store) Clear() {
	s.Users.Set(nil)
	s.Students.Set(nil)
	s.Conversations.Set(nil)
	s.Payments.Set(nil)
	s.News.Set(nil)
}
