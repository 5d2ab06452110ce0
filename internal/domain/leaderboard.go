package domain

import "time"

// DefaultLeaderboardLimit is how many entries a leaderboard shows.
const DefaultLeaderboardLimit = 10

type LeaderboardEntry struct {
	GameID    string
	UserID    string
	UserName  string
	AvatarURL string
	BorderID  string
	Score     int
	UpdatedAt time.Time
}
