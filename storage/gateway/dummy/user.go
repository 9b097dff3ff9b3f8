package dummygw

import (
	"errors"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/darasa/core/user"
)

var (
	ErrEmailExists    = errors.New("a user with this email already exists")
	ErrUsernameExists = errors.New("a user with this username already exists")
)

var _ user.Gateway = (*DB)(nil)

// queryUsers returns users sorted by id. Callers must hold db.mu.
func (db *DB) queryUsers() []user.User {
	users := make([]user.User, 0, len(db.users))
	for _, rec := range db.users {
		users = append(users, rec.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (db *DB) QueryAllUsers() ([]user.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.queryUsers(), nil
}

func (db *DB) GetUserByID(id int) (user.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if rec, ok := db.users[id]; ok {
		return rec.User, nil
	}
	return user.User{}, user.ErrNotFound
}

func (db *DB) CreateUser(nu user.NewUser) (user.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, rec := range db.users {
		if rec.Username == nu.Username {
			return user.User{}, ErrUsernameExists
		}
		if rec.Email == nu.Email {
			return user.User{}, ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	db.userPK++
	rec := &userRecord{
		User: user.User{
			ID:       db.userPK,
			Username: nu.Username,
			Email:    nu.Email,
			Role:     nu.Role,
		},
		passwordHash: hash,
	}
	db.users[rec.ID] = rec
	return rec.User, nil
}

func (db *DB) UpdateUser(id int, uu user.UpdateUser) (user.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rec, ok := db.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	rec.Username = uu.Username
	rec.Email = uu.Email
	rec.Role = uu.Role
	return rec.User, nil
}

func (db *DB) DeleteUser(id int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(db.users, id)
	return nil
}

// CheckPassword verifies a stored user's password (login support).
func (db *DB) CheckPassword(email, pwd string) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, rec := range db.users {
		if rec.Email == email {
			return bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(pwd))
		}
	}
	return user.ErrNotFound
}
