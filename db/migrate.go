package db

import (
	"log"
)

// createTables creates the necessary tables if they don't exist yet.
func createTables() {
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT NOT NULL,
		guild_id TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, guild_id)
	);`

	_, err := DB.Exec(createUsersTableSQL)
	if err != nil {
		log.Fatalf("Failed to create users table: %v", err)
	}

	// The leaderboard reads by (guild_id, score), keep that path indexed.
	createScoreIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_users_guild_score ON users (guild_id, score);`

	_, err = DB.Exec(createScoreIndexSQL)
	if err != nil {
		log.Fatalf("Failed to create users score index: %v", err)
	}

	log.Println("Database tables initialized successfully.")
}
