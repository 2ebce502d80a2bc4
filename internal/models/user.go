package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role is the privilege level of a user account.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User represents a user of the store.
// The wishlist lives on the user document as a set of product references.
type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string               `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=100"`
	Email    string               `bson:"email" json:"email" validate:"required,email"`
	Password string               `bson:"password,omitempty" json:"-" validate:"omitempty,min=6"` // Never serialized back to clients
	Role     Role                 `bson:"role,omitempty" json:"role,omitempty"`
	Wishlist []primitive.ObjectID `bson:"wishlist,omitempty" json:"wishlist,omitempty"`
}

// EffectiveRole returns the user's role, treating an unset role as buyer.
func (u *User) EffectiveRole() Role {
	if u.Role == "" {
		return RoleBuyer
	}
	return u.Role
}
