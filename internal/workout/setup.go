package workout

import (
	"fmt"

	"github.com/mergington/octofit-backend/internal/platform/database"
)

// MigrateDB creates or updates the workouts table.
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Workout{}); err != nil {
		return fmt.Errorf("failed to migrate workouts table: %w", err)
	}
	return nil
}
