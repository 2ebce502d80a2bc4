package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		coll: coll,
	}
}

// Create inserts a new product document.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id.Hex(), err)
	}
	return &product, nil
}

// GetByIDs retrieves every product whose ID appears in ids. Missing IDs are
// simply absent from the result.
func (r *MongoProductRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetBySeller retrieves every product listed by the given seller email.
func (r *MongoProductRepository) GetBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"sellerEmail": sellerEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to get products for seller %s: %w", sellerEmail, err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// Search returns the page of products matching filter, sorted by price in
// the requested direction.
func (r *MongoProductRepository) Search(ctx context.Context, filter ProductFilter, sort SortDirection, page Page) ([]models.Product, error) {
	sortValue := -1
	if sort == SortAscending {
		sortValue = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "price", Value: sortValue}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	cursor, err := r.coll.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// Count returns the unpaginated number of products matching filter.
func (r *MongoProductRepository) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, filterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// DistinctBrands projects the distinct brand values across the whole catalog.
func (r *MongoProductRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "brand")
}

// DistinctCategories projects the distinct category values across the whole
// catalog.
func (r *MongoProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *MongoProductRepository) distinct(ctx context.Context, field string) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s values: %w", field, err)
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}

// filterQuery translates a ProductFilter into a MongoDB query document.
// Title and category become case-insensitive literal substring matches, so
// regex metacharacters in user input are quoted rather than interpreted.
func filterQuery(filter ProductFilter) bson.M {
	query := bson.M{}
	if filter.Title != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Title), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Category), Options: "i"}
	}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	return query
}
