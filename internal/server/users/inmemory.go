package users

import (
	"context"
	"sync"
	"time"

	"github.com/servtech/authd/internal/common"
)

// InMemoryRepository keeps the user directory in process memory. A single
// mutex guards the maps so the check-and-insert in Create is atomic under
// concurrent registrations. IDs are assigned strictly increasing from 1 and
// never reused. Contents are volatile and lost on restart.
type InMemoryRepository struct {
	mu      sync.Mutex
	byName  map[string]*User
	ordered []*User
	nextID  int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byName: make(map[string]*User),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Exists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byName[username]
	return ok, nil
}

func (r *InMemoryRepository) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.ordered {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrUsernameTaken
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.byName[stored.Username] = &stored
	r.ordered = append(r.ordered, &stored)

	copied := stored
	return &copied, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*User, 0, len(r.ordered))
	for _, u := range r.ordered {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}
