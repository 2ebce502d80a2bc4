package repositories

import (
	"context"
	"errors"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is returned when a lookup or mutation targets a user that
// does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access, including the
// wishlist set kept on each user document.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddToWishlist and RemoveFromWishlist are idempotent set mutations on a
	// single user document.
	AddToWishlist(ctx context.Context, email string, productID primitive.ObjectID) error
	RemoveFromWishlist(ctx context.Context, email string, productID primitive.ObjectID) error
}
