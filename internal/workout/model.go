package workout

// Workout is a static catalog entry describing a training session.
type Workout struct {
	ID                 string `gorm:"primarykey;type:varchar(36)" json:"_id"`
	Name               string `gorm:"not null" json:"name"`
	Type               string `gorm:"index" json:"type"`
	DurationMinutes    int    `json:"duration_minutes"`
	CaloriesPerSession int    `json:"calories_per_session"`
	Description        string `json:"description"`
	Difficulty         string `gorm:"index" json:"difficulty"`
}

// TableName pins the table name gorm maps Workout to.
func (Workout) TableName() string {
	return "workouts"
}
