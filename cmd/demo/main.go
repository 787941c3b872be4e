package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	_ "modernc.org/sqlite"

	"github.com/ad/go-user-model/internal/common/clock"
	"github.com/ad/go-user-model/internal/common/logger"
	"github.com/ad/go-user-model/internal/db"
	"github.com/ad/go-user-model/internal/services"
)

// Walks the profile conventions end to end against a real store: creation
// with a stamped join time, derived attributes, the cached adult flag,
// comparisons, destructuring and counting.
func main() {
	if err := logger.GetInstance().Initialize(os.Getenv("LOG_DIR"), os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	runID := uuid.NewString()
	appLog := logger.GetInstance().WithFields(logger.Fields{"run_id": runID})

	var store db.ProfileStore
	if os.Getenv("STORE") == "memory" {
		store = db.NewInMemoryProfileStore()
		appLog.Info("[DEMO] Using in-memory store")
	} else {
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "profiles.db"
		}

		sqlDB, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer sqlDB.Close()

		if err := db.InitSchema(sqlDB); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		queue := db.NewDBQueue(sqlDB)
		defer queue.Close()

		store = db.NewProfileRepository(queue)
		appLog.Infof("[DEMO] Using SQLite store at %s", dbPath)
	}

	manager := services.NewProfileManager(store, clock.NewRealClock())

	// Usernames are unique per run so the walkthrough can be re-run against
	// the same database file.
	suffix := runID[:8]

	age := 36
	ada, err := manager.Create(services.CreateProfileParams{
		Username:  "ada_" + suffix,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Age:       &age,
	})
	if err != nil {
		log.Fatalf("Failed to create profile: %v", err)
	}

	nameless, err := manager.Create(services.CreateProfileParams{
		Username: "grace_" + suffix,
	})
	if err != nil {
		log.Fatalf("Failed to create profile: %v", err)
	}

	appLog.Infof("[DEMO] Full name: %q, human form: %s, debug form: %#v", ada.FullName(), ada, ada)

	// The adult flag is cached until explicitly invalidated.
	young := 10
	youth, err := manager.Create(services.CreateProfileParams{
		Username: "tim_" + suffix,
		Age:      &young,
	})
	if err != nil {
		log.Fatalf("Failed to create profile: %v", err)
	}
	appLog.Infof("[DEMO] Adult at age 10: %v", youth.IsAdult())

	grown := 20
	youth.Age = &grown
	appLog.Infof("[DEMO] Adult after birthday, before invalidation: %v", youth.IsAdult())
	youth.InvalidateAdultCache()
	appLog.Infof("[DEMO] Adult after invalidation: %v", youth.IsAdult())

	if eq, err := ada.Equal(nameless); err == nil {
		appLog.Infof("[DEMO] %s equals %s: %v", ada, nameless, eq)
	}
	if less, err := ada.Less(nameless); err == nil {
		appLog.Infof("[DEMO] %s joined before %s: %v", ada, nameless, less)
	}
	if _, err := ada.Equal("ada"); err != nil {
		appLog.Infof("[DEMO] Comparing against a string: %v", err)
	}
	appLog.Infof("[DEMO] Identity hash: %d", ada.Hash())

	var fields []any
	for v := range ada.Fields() {
		fields = append(fields, v)
	}
	appLog.Infof("[DEMO] Destructured: %v", fields)

	count, err := manager.Count()
	if err != nil {
		log.Fatalf("Failed to count profiles: %v", err)
	}
	appLog.Infof("[DEMO] Profiles in store: %d", count)

	page, err := manager.GetProfileListPage(1)
	if err != nil {
		log.Fatalf("Failed to list profiles: %v", err)
	}
	for _, profile := range page.Profiles {
		appLog.Infof("[DEMO] %#v joined %s", profile, profile.JoinedAt.Format("2006-01-02 15:04:05"))
	}
}
