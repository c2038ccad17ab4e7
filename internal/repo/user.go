package repo

import (
	"errors"
	"sync"

	"github.com/crucial707/weblab/internal/models"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// ==========================
// UserRepo
// ==========================
// UserRepo is an in-memory user table. The lab provisions its users once at
// startup and never writes afterwards, but the repo is safe for concurrent
// use anyway since the server handles requests in parallel.
type UserRepo struct {
	mu     sync.RWMutex
	users  []*models.User
	nextID int
}

// ==========================
// Constructor
// ==========================
func NewUserRepo() *UserRepo {
	return &UserRepo{nextID: 1}
}

// ==========================
// Add User
// ==========================
// Add stores a new user with the given bcrypt password hash and returns it.
func (r *UserRepo) Add(username, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, errors.New("username already taken")
		}
	}

	user := &models.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	r.nextID++
	r.users = append(r.users, user)

	return user, nil
}

// ==========================
// Get By ID
// ==========================
func (r *UserRepo) GetByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, ErrNotFound
}

// ==========================
// Get By Username
// ==========================
func (r *UserRepo) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}

	return nil, ErrNotFound
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List() []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.User, len(r.users))
	copy(out, r.users)
	return out
}

// ==========================
// Count
// ==========================
func (r *UserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
