package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const dbDriver = "sqlite3"

// DB is the global database connection pool.
var DB *sql.DB

// InitDB opens the SQLite database at the given path and creates tables if
// they don't exist. The busy timeout keeps concurrent writers queued behind
// SQLite's single-writer lock instead of failing.
func InitDB(path string) {
	var err error
	DB, err = sql.Open(dbDriver, path+"?_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// createTables is defined in migrate.go
	createTables()

	log.Println("Database connection initialized successfully.")
}
