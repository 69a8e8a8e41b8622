package activity

import "time"

// Activity is the fact table: one logged workout session. User and team
// identity fields are denormalized copies taken at write time so list
// endpoints never need joins.
type Activity struct {
	ID              string    `gorm:"primarykey;type:varchar(36)" json:"_id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	UserEmail       string    `json:"user_email"`
	UserName        string    `json:"user_name"`
	HeroName        string    `json:"hero_name"`
	TeamID          string    `gorm:"index" json:"team_id"`
	ActivityType    string    `gorm:"index" json:"activity_type"`
	WorkoutName     string    `json:"workout_name"`
	DurationMinutes int       `json:"duration_minutes"`
	CaloriesBurned  int       `json:"calories_burned"`
	Points          int       `json:"points"`
	Date            time.Time `gorm:"index" json:"date"`
	Notes           string    `json:"notes"`
}

// TableName pins the table name gorm maps Activity to.
func (Activity) TableName() string {
	return "activities"
}
