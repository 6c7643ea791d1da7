package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lpoto/memsther/model"
)

// ErrUnavailable wraps any driver failure so callers can treat the store
// as temporarily unreachable and drop the current event.
var ErrUnavailable = errors.New("score store unavailable")

// AddScore atomically adds delta to a user's score within a guild, creating
// the record first when it is missing. The increment happens inside the
// upsert, never as a read-modify-write in the caller, so concurrent deltas
// against the same key always compose.
func AddScore(userID, guildID string, delta int64) error {
	_, err := DB.Exec(`
		INSERT INTO users (user_id, guild_id, score)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, guild_id) DO UPDATE SET
		score = score + excluded.score;
	`, userID, guildID, delta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// GetScore returns a user's score within a guild. A user with no recorded
// activity has a score of 0.
func GetScore(userID, guildID string) (int64, error) {
	var score int64
	err := DB.QueryRow(
		"SELECT score FROM users WHERE user_id = ? AND guild_id = ?",
		userID, guildID,
	).Scan(&score)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return score, nil
}

// GetTopScores returns up to limit positive scores for a guild, descending
// by score, ties broken by user id.
func GetTopScores(guildID string, limit int) ([]model.UserScore, error) {
	rows, err := DB.Query(`
		SELECT user_id, score FROM users
		WHERE guild_id = ? AND score > 0
		ORDER BY score DESC, user_id ASC
		LIMIT ?;
	`, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var scores []model.UserScore
	for rows.Next() {
		var score model.UserScore
		if err := rows.Scan(&score.UserID, &score.Score); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return scores, nil
}
