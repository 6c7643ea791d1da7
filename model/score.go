package model

// UserScore is one leaderboard row: a user's accumulated score within a
// single guild.
type UserScore struct {
	UserID string
	Score  int64
}
