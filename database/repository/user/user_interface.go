package userRepo

import (
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when not found.
	GetByEmail(email string) (*models.User, error)
	// GetByIDs retrieves all users matching the given IDs.
	GetByIDs(ids []string) ([]models.User, error)
	// GetAll retrieves all users with an optional projection.
	GetAll(projection bson.M) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial update to a user document.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
