package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

const (
	// DefaultPage is the 1-indexed page used when none is requested.
	DefaultPage = 1
	// DefaultPageSize is the page size used when none is requested.
	DefaultPageSize = 9
)

// CatalogQuery holds the raw optional parameters of a catalog listing
// request. Zero values impose no constraint.
type CatalogQuery struct {
	Title    string
	Category string
	Brand    string
	Sort     string // "asc" sorts ascending by price, anything else descending
	Page     int
	Limit    int
}

// Filter translates the query into a store-agnostic product filter.
func (q CatalogQuery) Filter() repositories.ProductFilter {
	return repositories.ProductFilter{
		Title:    q.Title,
		Category: q.Category,
		Brand:    q.Brand,
	}
}

// SortDirection returns the requested price ordering, descending by default.
func (q CatalogQuery) SortDirection() repositories.SortDirection {
	if q.Sort == "asc" {
		return repositories.SortAscending
	}
	return repositories.SortDescending
}

// Pagination translates page/limit into a skip/limit window. Pages below 1
// and limits below 1 are clamped to the defaults, so skip is never negative.
func (q CatalogQuery) Pagination() repositories.Page {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	return repositories.Page{
		Skip:  int64(page-1) * int64(limit),
		Limit: int64(limit),
	}
}

// CatalogPage is the composite catalog listing response: one sorted page of
// products, the filtered total, and the catalog-wide facet values.
type CatalogPage struct {
	Products      []models.Product `json:"products"`
	Brands        []string         `json:"brands"`
	Categories    []string         `json:"categories"`
	TotalProducts int64            `json:"totalProducts"`
}

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewCatalogService creates a new CatalogService. mqClient may be nil, in
// which case event publication is skipped.
func NewCatalogService(productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// AddProduct creates a new catalog item for the given seller.
func (s *CatalogService) AddProduct(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now()
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishProductCreated(map[string]interface{}{
			"productID":   product.ID.Hex(),
			"title":       product.Title,
			"sellerEmail": product.SellerEmail,
			"price":       product.Price,
		}); err != nil {
			log.Printf("Warning: Failed to publish product created event for %s: %v", product.ID.Hex(), err)
		}
	}

	return nil
}

// ProductsBySeller retrieves every product listed by the given seller.
func (s *CatalogService) ProductsBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	return s.productRepo.GetBySeller(ctx, sellerEmail)
}

// ListProducts executes a catalog query: the sorted, paginated page of
// matching products, the unpaginated count of matches, and the distinct
// brand/category facets over the entire catalog. Store failures surface
// once; no retries.
func (s *CatalogService) ListProducts(ctx context.Context, q CatalogQuery) (*CatalogPage, error) {
	filter := q.Filter()

	products, err := s.productRepo.Search(ctx, filter, q.SortDirection(), q.Pagination())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	brands, err := s.productRepo.DistinctBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch brand facets: %w", err)
	}

	categories, err := s.productRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category facets: %w", err)
	}

	return &CatalogPage{
		Products:      products,
		Brands:        brands,
		Categories:    categories,
		TotalProducts: total,
	}, nil
}
