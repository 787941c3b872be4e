package db

import (
	"errors"
	"sort"
	"sync"

	"github.com/ad/go-user-model/internal/models"
)

// ErrUsernameTaken is returned when a persist would violate username
// uniqueness.
var ErrUsernameTaken = errors.New("username already taken")

// InMemoryProfileStore keeps profiles in a map guarded by a mutex. It backs
// tests and tooling where a database file is overkill, and enforces the
// same constraints as the SQLite store.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[int64]models.UserProfile
	nextID   int64
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[int64]models.UserProfile)}
}

func (s *InMemoryProfileStore) Persist(profile *models.UserProfile) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.profiles {
		if existing.Username == profile.Username && id != profile.ID {
			return 0, ErrUsernameTaken
		}
	}

	if profile.ID == 0 {
		s.nextID++
		profile.ID = s.nextID
		s.put(*profile)
		return profile.ID, nil
	}

	// Updates keep the stored joined_at, it is stamped once at creation.
	if existing, ok := s.profiles[profile.ID]; ok {
		updated := *profile
		updated.JoinedAt = existing.JoinedAt
		s.put(updated)
		return profile.ID, nil
	}
	s.put(*profile)
	return profile.ID, nil
}

// Stored copies carry no adult memo, so fetched instances compute the flag
// from their own fields like rows scanned from SQLite do.
func (s *InMemoryProfileStore) put(profile models.UserProfile) {
	profile.InvalidateAdultCache()
	s.profiles[profile.ID] = profile
}

func (s *InMemoryProfileStore) GetByID(id int64) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

// GetAll returns every profile, newest join first.
func (s *InMemoryProfileStore) GetAll() ([]*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]*models.UserProfile, 0, len(s.profiles))
	for id := range s.profiles {
		profile := s.profiles[id]
		profiles = append(profiles, &profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].JoinedAt.Equal(profiles[j].JoinedAt) {
			return profiles[i].ID > profiles[j].ID
		}
		return profiles[i].JoinedAt.After(profiles[j].JoinedAt)
	})
	return profiles, nil
}

func (s *InMemoryProfileStore) CountAll() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles), nil
}
