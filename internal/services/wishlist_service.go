package services

import (
	"context"
	"errors"
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidProductID is returned when a product identifier is not a valid
// object ID.
var ErrInvalidProductID = errors.New("invalid product id")

// WishlistService handles business logic for per-user wishlists.
type WishlistService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// Add inserts a product reference into the user's wishlist. Adding an
// already-present reference is a no-op success. Product identifiers arrive
// as opaque hex tokens and are validated before any store call.
func (s *WishlistService) Add(ctx context.Context, email, productIDHex string) error {
	productID, err := primitive.ObjectIDFromHex(productIDHex)
	if err != nil {
		return ErrInvalidProductID
	}
	return s.userRepo.AddToWishlist(ctx, email, productID)
}

// Remove deletes a product reference from the user's wishlist. Removing an
// absent reference is a no-op success.
func (s *WishlistService) Remove(ctx context.Context, email, productIDHex string) error {
	productID, err := primitive.ObjectIDFromHex(productIDHex)
	if err != nil {
		return ErrInvalidProductID
	}
	return s.userRepo.RemoveFromWishlist(ctx, email, productID)
}

// Resolve fetches the user's wishlist and hydrates it into full product
// records. An empty wishlist yields an empty list, not an error.
func (s *WishlistService) Resolve(ctx context.Context, userIDHex string) ([]models.Product, error) {
	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Wishlist) == 0 {
		return []models.Product{}, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, user.Wishlist)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wishlist for user %s: %w", userIDHex, err)
	}
	return products, nil
}
