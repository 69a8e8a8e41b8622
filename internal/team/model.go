package team

import "time"

// Team is a superhero squad users belong to.
type Team struct {
	// ID is a human-readable slug, e.g. "team_marvel".
	ID          string    `gorm:"primarykey;type:varchar(100)" json:"_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// MemberCount caches the number of users on the team. It is refreshed
	// whenever a user is created, moved or deleted.
	MemberCount int `json:"member_count"`
}

// TableName pins the table name gorm maps Team to.
func (Team) TableName() string {
	return "teams"
}
