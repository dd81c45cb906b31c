// Package auth provides typed access to the two persisted auth records: the
// user collection and the single active session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/localauth/internal/models"
	"github.com/dmitrijs2005/localauth/internal/storage"
)

// Storage keys, versioned for future migrations.
const (
	UsersKey   = "AUTH_USERS_V1"
	SessionKey = "AUTH_SESSION_V1"
)

// ErrEmailTaken is returned by AddUser when the collection already holds a
// user with the same email at write time.
var ErrEmailTaken = errors.New("email already registered")

// Repository describes persistence of users and the current session.
// Lookups return (nil, nil) when nothing matches.
type Repository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	AddUser(ctx context.Context, user models.User) error

	GetSession(ctx context.Context) (*models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// StorageRepository implements Repository over the JSON storage adapter.
// All methods are serialized by a single mutex so the user collection and
// the session slot have exactly one writer at a time.
type StorageRepository struct {
	mu    sync.Mutex
	store *storage.Storage
}

func NewStorageRepository(store *storage.Storage) *StorageRepository {
	return &StorageRepository{store: store}
}

func (r *StorageRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listUsers(ctx)
}

func (r *StorageRepository) listUsers(ctx context.Context) ([]models.User, error) {
	users, _, err := storage.Get[[]models.User](ctx, r.store, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *StorageRepository) SaveUsers(ctx context.Context, users []models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if users == nil {
		users = []models.User{}
	}
	if err := r.store.Set(ctx, UsersKey, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *StorageRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, func(u models.User) bool { return u.Email == email })
}

func (r *StorageRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.findUser(ctx, func(u models.User) bool { return u.ID == id })
}

func (r *StorageRepository) findUser(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.listUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// AddUser appends user to the stored collection in one atomic
// read-modify-write. Nothing is written when it fails.
func (r *StorageRepository) AddUser(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := storage.Update(ctx, r.store, UsersKey, func(users []models.User, _ bool) ([]models.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, ErrEmailTaken
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

func (r *StorageRepository) GetSession(ctx context.Context) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, found, err := storage.Get[models.Session](ctx, r.store, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (r *StorageRepository) SaveSession(ctx context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Set(ctx, SessionKey, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *StorageRepository) ClearSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
