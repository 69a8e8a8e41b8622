package leaderboard

import "time"

// Leaderboard types. Every snapshot row belongs to exactly one board.
const (
	TypeIndividual = "individual"
	TypeTeam       = "team"
)

// Entry is one ranked row of a leaderboard snapshot. The whole table is a
// derived, disposable view: each rebuild deletes and reinserts it wholesale.
type Entry struct {
	ID              string    `gorm:"primarykey;type:varchar(36)" json:"_id"`
	LeaderboardType string    `gorm:"index" json:"leaderboard_type"`
	Rank            int       `json:"rank"`
	TotalPoints     int       `json:"total_points"`
	LastUpdated     time.Time `json:"last_updated"`

	// Individual board fields, denormalized from the user at build time.
	UserID    string `gorm:"index" json:"user_id,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	HeroName  string `json:"hero_name,omitempty"`

	// TeamID is set on both boards; TeamName only on the team board.
	TeamID   string `gorm:"index" json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

// TableName pins the table name gorm maps Entry to.
func (Entry) TableName() string {
	return "leaderboard"
}
