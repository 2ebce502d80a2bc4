package repositories

import (
	"context"
	"sync"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[primitive.ObjectID]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[primitive.ObjectID]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns a user by email.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID returns a user by ID.
func (r *MockUserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

// UpdateRole sets a user's role.
func (r *MockUserRepository) UpdateRole(_ context.Context, id primitive.ObjectID, role models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Role = role
	r.users[id] = user
	return nil
}

// Delete removes a user by ID.
func (r *MockUserRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// AddToWishlist adds a product reference to the user's wishlist, ignoring
// duplicates.
func (r *MockUserRepository) AddToWishlist(_ context.Context, email string, productID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.Email != email {
			continue
		}
		for _, existing := range u.Wishlist {
			if existing == productID {
				return nil
			}
		}
		u.Wishlist = append(u.Wishlist, productID)
		r.users[id] = u
		return nil
	}
	return ErrUserNotFound
}

// RemoveFromWishlist removes a product reference from the user's wishlist.
// Removing an absent reference is a no-op.
func (r *MockUserRepository) RemoveFromWishlist(_ context.Context, email string, productID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.Email != email {
			continue
		}
		kept := u.Wishlist[:0]
		for _, existing := range u.Wishlist {
			if existing != productID {
				kept = append(kept, existing)
			}
		}
		u.Wishlist = kept
		r.users[id] = u
		return nil
	}
	return ErrUserNotFound
}
