package repositories

import (
	"context"
	"errors"
	"fmt"

	"pasar/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{
		coll: coll,
	}
}

// Create inserts a new user document.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id.Hex(), err)
	}
	return &user, nil
}

// GetAll retrieves every user.
func (r *MongoUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// UpdateRole sets the role field on a single user document.
func (r *MongoUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role models.Role) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID. Wishlist references held by other documents
// are not cleaned up.
func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AddToWishlist adds a product reference to the user's wishlist set.
// $addToSet makes a duplicate add a no-op.
func (r *MongoUserRepository) AddToWishlist(ctx context.Context, email string, productID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"wishlist": productID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add product %s to wishlist of %s: %w", productID.Hex(), email, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RemoveFromWishlist removes a product reference from the user's wishlist
// set. Removing an absent reference is a no-op.
func (r *MongoUserRepository) RemoveFromWishlist(ctx context.Context, email string, productID primitive.ObjectID) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$pull": bson.M{"wishlist": productID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove product %s from wishlist of %s: %w", productID.Hex(), email, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
