package user

import "time"

// User is a superhero who logs activities.
type User struct {
	ID       string `gorm:"primarykey;type:varchar(36)" json:"_id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	HeroName string `json:"hero_name"`
	TeamID   string `gorm:"index" json:"team_id"`

	// TotalPoints caches the sum of points over the user's activities.
	// The leaderboard rebuild and the activity write paths keep it current.
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName pins the table name gorm maps User to.
func (User) TableName() string {
	return "users"
}
