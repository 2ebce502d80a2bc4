package repositories

import (
	"context"
	"errors"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProductNotFound is returned when a lookup targets a product that does
// not exist.
var ErrProductNotFound = errors.New("product not found")

// SortDirection orders catalog results by price.
type SortDirection int

const (
	SortDescending SortDirection = iota
	SortAscending
)

// ProductFilter is a store-agnostic catalog filter. Empty fields impose no
// constraint. Title and Category match as case-insensitive substrings, Brand
// matches exactly.
type ProductFilter struct {
	Title    string
	Category string
	Brand    string
}

// Page is a skip/limit window applied after sorting.
type Page struct {
	Skip  int64
	Limit int64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	GetBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error)

	// Search returns the page of products matching filter, sorted by price.
	Search(ctx context.Context, filter ProductFilter, sort SortDirection, page Page) ([]models.Product, error)
	// Count returns the unpaginated number of products matching filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	// DistinctBrands and DistinctCategories project facet values across the
	// entire catalog, independent of any filter.
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
