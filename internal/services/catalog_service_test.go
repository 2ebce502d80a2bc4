package services_test

import (
	"context"
	"fmt"
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	args := m.Called(ctx, sellerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, filter repositories.ProductFilter, sort repositories.SortDirection, page repositories.Page) ([]models.Product, error) {
	args := m.Called(ctx, filter, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter repositories.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestCatalogQuery_Defaults(t *testing.T) {
	var q services.CatalogQuery

	assert.Equal(t, repositories.ProductFilter{}, q.Filter())
	assert.Equal(t, repositories.SortDescending, q.SortDirection())
	assert.Equal(t, repositories.Page{Skip: 0, Limit: 9}, q.Pagination())
}

func TestCatalogQuery_Pagination(t *testing.T) {
	// page=2&limit=5 skips the first page of 5.
	q := services.CatalogQuery{Page: 2, Limit: 5}
	assert.Equal(t, repositories.Page{Skip: 5, Limit: 5}, q.Pagination())

	// Pages below 1 clamp to the first page; skip is never negative.
	q = services.CatalogQuery{Page: -3, Limit: 5}
	assert.Equal(t, repositories.Page{Skip: 0, Limit: 5}, q.Pagination())

	// Limits below 1 clamp to the default page size.
	q = services.CatalogQuery{Page: 3, Limit: 0}
	assert.Equal(t, repositories.Page{Skip: 18, Limit: 9}, q.Pagination())
}

func TestCatalogQuery_SortDirection(t *testing.T) {
	assert.Equal(t, repositories.SortAscending, services.CatalogQuery{Sort: "asc"}.SortDirection())
	assert.Equal(t, repositories.SortDescending, services.CatalogQuery{Sort: "desc"}.SortDirection())
	assert.Equal(t, repositories.SortDescending, services.CatalogQuery{Sort: "anything"}.SortDirection())
}

func TestCatalogService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	catalogService := services.NewCatalogService(mockRepo, nil)

	query := services.CatalogQuery{Category: "shoes", Sort: "asc", Page: 2, Limit: 5}
	filter := repositories.ProductFilter{Category: "shoes"}
	window := repositories.Page{Skip: 5, Limit: 5}

	pageProducts := []models.Product{
		{Title: "Runner", Category: "Shoes", Brand: "Nike", Price: 60},
		{Title: "Walker", Category: "Shoes", Brand: "Puma", Price: 70},
	}

	mockRepo.On("Search", mock.Anything, filter, repositories.SortAscending, window).Return(pageProducts, nil).Once()
	mockRepo.On("Count", mock.Anything, filter).Return(int64(12), nil).Once()
	mockRepo.On("DistinctBrands", mock.Anything).Return([]string{"Nike", "Puma"}, nil).Once()
	mockRepo.On("DistinctCategories", mock.Anything).Return([]string{"Bags", "Shoes"}, nil).Once()

	page, err := catalogService.ListProducts(context.Background(), query)
	assert.NoError(t, err)
	assert.Equal(t, pageProducts, page.Products)
	// totalProducts reflects the filtered count, not the page length and not
	// the global catalog size.
	assert.Equal(t, int64(12), page.TotalProducts)
	// Facets span the whole catalog regardless of the filter.
	assert.Equal(t, []string{"Nike", "Puma"}, page.Brands)
	assert.Equal(t, []string{"Bags", "Shoes"}, page.Categories)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_EmptyPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	catalogService := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.Product{}, nil).Once()
	mockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	mockRepo.On("DistinctBrands", mock.Anything).Return([]string{}, nil).Once()
	mockRepo.On("DistinctCategories", mock.Anything).Return([]string{}, nil).Once()

	page, err := catalogService.ListProducts(context.Background(), services.CatalogQuery{Title: "nonexistent"})
	assert.NoError(t, err)
	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(0), page.TotalProducts)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListProducts_StoreFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	catalogService := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("server selection timeout")).Once()

	page, err := catalogService.ListProducts(context.Background(), services.CatalogQuery{})
	assert.Error(t, err)
	assert.Nil(t, page)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	catalogService := services.NewCatalogService(mockRepo, nil)

	product := &models.Product{
		Title:       "Mechanical Keyboard",
		Brand:       "Keychron",
		Category:    "Peripherals",
		Price:       75.0,
		SellerEmail: "seller@example.com",
	}

	mockRepo.On("Create", mock.Anything, product).Return(nil).Once()

	err := catalogService.AddProduct(context.Background(), product)
	assert.NoError(t, err)
	assert.False(t, product.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ProductsBySeller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	catalogService := services.NewCatalogService(mockRepo, nil)

	expected := []models.Product{{Title: "Runner", SellerEmail: "seller@example.com", Price: 60}}
	mockRepo.On("GetBySeller", mock.Anything, "seller@example.com").Return(expected, nil).Once()

	products, err := catalogService.ProductsBySeller(context.Background(), "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}
