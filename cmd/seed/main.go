// seed inserts sample profiles for local poking at the store. Idempotent:
// usernames that already exist are left untouched.
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	_ "modernc.org/sqlite"

	"github.com/ad/go-user-model/internal/common/clock"
	"github.com/ad/go-user-model/internal/db"
	"github.com/ad/go-user-model/internal/services"
)

func agePtr(age int) *int {
	return &age
}

var sampleProfiles = []services.CreateProfileParams{
	{Username: "ada", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: agePtr(36)},
	{Username: "grace", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Age: agePtr(45)},
	{Username: "edsger", FirstName: "Edsger", LastName: "Dijkstra", Email: "edsger@example.com"},
	{Username: "tim", Email: "tim@example.com", Age: agePtr(10)},
	{Username: "anon"},
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./profiles.db"
	}

	database, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	queue := db.NewDBQueue(database)
	defer queue.Close()

	repo := db.NewProfileRepository(queue)
	manager := services.NewProfileManager(repo, clock.NewRealClock())

	existing, err := repo.GetAll()
	if err != nil {
		log.Fatalf("Failed to read existing profiles: %v", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, profile := range existing {
		taken[profile.Username] = true
	}

	created := 0
	for _, params := range sampleProfiles {
		if taken[params.Username] {
			log.Printf("Skipping %s, already present", params.Username)
			continue
		}
		profile, err := manager.Create(params)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", params.Username, err)
		}
		log.Printf("Seeded %#v", profile)
		created++
	}

	count, err := manager.Count()
	if err != nil {
		log.Fatalf("Failed to count profiles: %v", err)
	}
	log.Printf("Seeding done: %d created, %d total", created, count)
}
