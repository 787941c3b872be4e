package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_profiles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL DEFAULT '',
    joined_at DATETIME NOT NULL,
    age INTEGER CHECK (age >= 0)
);

CREATE INDEX IF NOT EXISTS idx_user_profiles_joined_at ON user_profiles(joined_at);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
