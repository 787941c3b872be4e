package db

import (
	"database/sql"
	"time"

	"github.com/ad/go-user-model/internal/models"
	"github.com/ad/go-user-model/internal/observability/metrics"
)

// ProfileRepository is the SQLite-backed ProfileStore. All statements run
// through the queue worker.
type ProfileRepository struct {
	queue *DBQueue
}

func NewProfileRepository(queue *DBQueue) *ProfileRepository {
	return &ProfileRepository{queue: queue}
}

func (r *ProfileRepository) Persist(profile *models.UserProfile) (int64, error) {
	start := time.Now()
	// joined_at is written in UTC so the stored text orders chronologically
	// regardless of the offset the caller's time carries.
	joined := profile.JoinedAt.UTC()

	result, err := r.queue.Execute(func(db *sql.DB) (any, error) {
		if profile.ID == 0 {
			res, err := db.Exec(`
				INSERT INTO user_profiles (first_name, last_name, username, email, joined_at, age)
				VALUES (?, ?, ?, ?, ?, ?)
			`, profile.FirstName, profile.LastName, profile.Username, profile.Email, joined, profile.Age)
			if err != nil {
				return nil, err
			}
			return res.LastInsertId()
		}

		// joined_at is stamped at creation and never updated.
		_, err := db.Exec(`
			INSERT INTO user_profiles (id, first_name, last_name, username, email, joined_at, age)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				first_name = excluded.first_name,
				last_name = excluded.last_name,
				username = excluded.username,
				email = excluded.email,
				age = excluded.age
		`, profile.ID, profile.FirstName, profile.LastName, profile.Username, profile.Email, joined, profile.Age)
		return profile.ID, err
	})
	if err := handleExecError(err, "persist profile", start); err != nil {
		return 0, err
	}

	id := result.(int64)
	profile.ID = id
	return id, nil
}

func (r *ProfileRepository) GetByID(id int64) (*models.UserProfile, error) {
	start := time.Now()
	result, err := r.queue.Execute(func(db *sql.DB) (any, error) {
		row := db.QueryRow(`
			SELECT id, first_name, last_name, username, email, joined_at, age
			FROM user_profiles WHERE id = ?
		`, id)
		return scanProfile(row)
	})
	if err := handleQueryError(err, "get profile", start); err != nil {
		return nil, err
	}
	return result.(*models.UserProfile), nil
}

// GetAll returns every profile, newest join first.
func (r *ProfileRepository) GetAll() ([]*models.UserProfile, error) {
	start := time.Now()
	result, err := r.queue.Execute(func(db *sql.DB) (any, error) {
		rows, err := db.Query(`
			SELECT id, first_name, last_name, username, email, joined_at, age
			FROM user_profiles ORDER BY joined_at DESC, id DESC
		`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var profiles []*models.UserProfile
		for rows.Next() {
			profile, err := scanProfile(rows)
			if err != nil {
				return nil, err
			}
			profiles = append(profiles, profile)
		}
		return profiles, rows.Err()
	})
	if err := handleQueryError(err, "list profiles", start); err != nil {
		return nil, err
	}
	return result.([]*models.UserProfile), nil
}

func (r *ProfileRepository) CountAll() (int, error) {
	start := time.Now()
	result, err := r.queue.Execute(func(db *sql.DB) (any, error) {
		var count int
		err := db.QueryRow(`SELECT COUNT(*) FROM user_profiles`).Scan(&count)
		return count, err
	})
	if err := handleQueryError(err, "count profiles", start); err != nil {
		return 0, err
	}

	count := result.(int)
	metrics.ProfilesTotal.Set(float64(count))
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.UserProfile, error) {
	var profile models.UserProfile
	var age sql.NullInt64
	err := row.Scan(&profile.ID, &profile.FirstName, &profile.LastName,
		&profile.Username, &profile.Email, &profile.JoinedAt, &age)
	if err != nil {
		return nil, err
	}
	if age.Valid {
		v := int(age.Int64)
		profile.Age = &v
	}
	return &profile, nil
}
