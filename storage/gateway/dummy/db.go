// Package dummygw is an in-memory implementation of the remote
// data-access contract, for tests and local development. It mimics the
// backend's observable behavior: admin scoping of student mutations,
// conversation de-duplication per participant pair, server-minted ids
// and timestamps.
package dummygw

import (
	"sync"

	"github.com/trezcool/darasa/core/chat"
	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/payment"
	"github.com/trezcool/darasa/core/student"
	"github.com/trezcool/darasa/core/user"
)

type (
	DB struct {
		mu sync.RWMutex

		users    map[int]*userRecord
		students map[int]*student.Student
		payments map[int]*payment.Payment
		news     map[string]*news.News
		chats    map[string]*chat.Conversation

		userPK, studentPK, resultPK, attendancePK, paymentPK int
	}

	userRecord struct {
		user.User
		passwordHash []byte
	}
)

func Open() (*DB, error) {
	db := &DB{
		users:    make(map[int]*userRecord),
		students: make(map[int]*student.Student),
		payments: make(map[int]*payment.Payment),
		news:     make(map[string]*news.News),
		chats:    make(map[string]*chat.Conversation),
	}
	return db, nil
}

// requireAdmin enforces the acting-admin scoping the real backend
// applies to student mutations. Callers must hold db.mu.
func (db *DB) requireAdmin(actingAdminID int) error {
	rec, ok := db.users[actingAdminID]
	if !ok || !rec.IsAdmin() {
		return student.ErrAdminRequired
	}
	return nil
}
