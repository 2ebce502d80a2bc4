package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the store's query semantics: case-insensitive substring matches
// on title/category, exact brand match, price sort, skip/limit paging.
type MockProductRepository struct {
	products map[primitive.ObjectID]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetByIDs returns every product whose ID appears in ids.
func (r *MockProductRepository) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetBySeller returns every product listed by the given seller email.
func (r *MockProductRepository) GetBySeller(_ context.Context, sellerEmail string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.products {
		if p.SellerEmail == sellerEmail {
			products = append(products, p)
		}
	}
	return products, nil
}

// Search returns the page of matching products sorted by price.
func (r *MockProductRepository) Search(_ context.Context, filter ProductFilter, sortDir SortDirection, page Page) ([]models.Product, error) {
	r.mu.RLock()
	matched := r.match(filter)
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if sortDir == SortAscending {
			return matched[i].Price < matched[j].Price
		}
		return matched[i].Price > matched[j].Price
	})

	if page.Skip >= int64(len(matched)) {
		return []models.Product{}, nil
	}
	matched = matched[page.Skip:]
	if page.Limit > 0 && page.Limit < int64(len(matched)) {
		matched = matched[:page.Limit]
	}
	return matched, nil
}

// Count returns the number of products matching filter.
func (r *MockProductRepository) Count(_ context.Context, filter ProductFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.match(filter))), nil
}

// DistinctBrands returns the distinct brand values across all products.
func (r *MockProductRepository) DistinctBrands(_ context.Context) ([]string, error) {
	return r.distinct(func(p models.Product) string { return p.Brand }), nil
}

// DistinctCategories returns the distinct category values across all
// products.
func (r *MockProductRepository) DistinctCategories(_ context.Context) ([]string, error) {
	return r.distinct(func(p models.Product) string { return p.Category }), nil
}

func (r *MockProductRepository) distinct(field func(models.Product) string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	values := []string{}
	for _, p := range r.products {
		v := field(p)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

// match filters the product set. Caller must hold at least a read lock.
func (r *MockProductRepository) match(filter ProductFilter) []models.Product {
	matched := []models.Product{}
	for _, p := range r.products {
		if filter.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(filter.Category)) {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
