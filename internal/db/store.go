package db

import (
	"errors"

	"github.com/ad/go-user-model/internal/models"
)

// ErrProfileNotFound is returned when no profile exists for the requested
// identity key.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore is the persistence contract for user profiles.
//
// Persist saves a profile: on first save the store assigns the identity key
// and returns it, later saves update the mutable fields in place. Store
// failures are returned as-is and are never retried here; constraint
// violations surface as errors from Persist. Implementations serialize
// their own access.
type ProfileStore interface {
	Persist(profile *models.UserProfile) (int64, error)
	GetByID(id int64) (*models.UserProfile, error)
	GetAll() ([]*models.UserProfile, error)
	CountAll() (int, error)
}
