package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrUserExists is returned by Register when the email is already taken.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidUserID is returned when a user identifier is not a valid object
// ID.
var ErrInvalidUserID = errors.New("invalid user id")

// ErrInvalidRole is returned when a role change names an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// UserService handles business logic for user accounts and roles.
type UserService struct {
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. mqClient may be nil, in which
// case event publication is skipped.
func NewUserService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// Register creates a new user account. Registration is idempotent on email:
// re-registering an existing email returns ErrUserExists without touching
// the store. An optional password is hashed before storage, and any role in
// the request is discarded; roles are granted only through ChangeRole.
func (s *UserService) Register(ctx context.Context, user *models.User) error {
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	user.Role = ""
	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishUserRegistered(map[string]interface{}{
			"userID": user.ID.Hex(),
			"email":  user.Email,
		}); err != nil {
			log.Printf("Warning: Failed to publish user registered event for %s: %v", user.Email, err)
		}
	}

	return nil
}

// GetByEmail retrieves a single user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// GetAll retrieves every user.
func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// ChangeRole sets a user's role. The identifier arrives as an opaque hex
// token and is validated locally before any store call.
func (s *UserService) ChangeRole(ctx context.Context, idHex string, role models.Role) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrInvalidUserID
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.userRepo.UpdateRole(ctx, id, role)
}

// Delete removes a user by ID. Products referencing the removed user keep
// their dangling seller email.
func (s *UserService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrInvalidUserID
	}
	return s.userRepo.Delete(ctx, id)
}
