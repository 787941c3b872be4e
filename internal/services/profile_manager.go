package services

import (
	"github.com/ad/go-user-model/internal/common/clock"
	"github.com/ad/go-user-model/internal/common/logger"
	"github.com/ad/go-user-model/internal/db"
	"github.com/ad/go-user-model/internal/models"
	"github.com/ad/go-user-model/internal/observability/metrics"
)

const ProfilesPerPage = 10

// CreateProfileParams carries the caller-supplied attributes for a new
// profile. Username is the only required field.
type CreateProfileParams struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Age       *int
}

type ProfileListPage struct {
	Profiles    []*models.UserProfile
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
}

// ProfileManager owns the profile lifecycle: creation with a stamped join
// time, lookups and counting. It never retries store failures, they are
// returned to the caller unchanged.
type ProfileManager struct {
	store db.ProfileStore
	clock clock.Clock
	log   *logger.Logger
}

func NewProfileManager(store db.ProfileStore, clk clock.Clock) *ProfileManager {
	return &ProfileManager{
		store: store,
		clock: clk,
		log:   logger.GetInstance(),
	}
}

// Create builds a profile from params, stamps JoinedAt from the clock,
// validates and persists it. Validation failures surface before the store
// is touched.
func (m *ProfileManager) Create(params CreateProfileParams) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Username:  params.Username,
		Email:     params.Email,
		JoinedAt:  m.clock.Now(),
		Age:       params.Age,
	}

	if err := profile.Validate(); err != nil {
		m.log.Warnf("[PROFILE_MANAGER] Rejected profile %q: %v", params.Username, err)
		return nil, err
	}

	if _, err := m.store.Persist(profile); err != nil {
		m.log.Errorf("[PROFILE_MANAGER] Failed to persist profile %q: %v", params.Username, err)
		return nil, err
	}

	metrics.ProfilesCreated.Inc()
	m.log.Infof("[PROFILE_MANAGER] Created %#v", profile)
	return profile, nil
}

func (m *ProfileManager) Get(id int64) (*models.UserProfile, error) {
	return m.store.GetByID(id)
}

// List returns every profile in the store's default order, newest join
// first.
func (m *ProfileManager) List() ([]*models.UserProfile, error) {
	return m.store.GetAll()
}

func (m *ProfileManager) Count() (int, error) {
	return m.store.CountAll()
}

// GetProfileListPage slices the full listing into fixed-size pages. Out of
// range pages are clamped instead of failing.
func (m *ProfileManager) GetProfileListPage(page int) (*ProfileListPage, error) {
	if page < 1 {
		page = 1
	}

	allProfiles, err := m.store.GetAll()
	if err != nil {
		return nil, err
	}

	totalProfiles := len(allProfiles)
	totalPages := (totalProfiles + ProfilesPerPage - 1) / ProfilesPerPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * ProfilesPerPage
	end := start + ProfilesPerPage
	if end > totalProfiles {
		end = totalProfiles
	}

	var pageProfiles []*models.UserProfile
	if start < totalProfiles {
		pageProfiles = allProfiles[start:end]
	}

	return &ProfileListPage{
		Profiles:    pageProfiles,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}, nil
}
