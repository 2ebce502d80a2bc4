package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog item. Every product belongs to exactly one
// seller, referenced by email (not enforced by the store).
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required,min=3,max=200"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=500"`
	Brand       string             `bson:"brand" json:"brand" validate:"required,max=100"`
	Category    string             `bson:"category" json:"category" validate:"required,max=100"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
