package team

import (
	"fmt"

	"github.com/mergington/octofit-backend/internal/platform/database"
	"gorm.io/gorm"
)

// MigrateDB creates or updates the teams table.
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Team{}); err != nil {
		return fmt.Errorf("failed to migrate teams table: %w", err)
	}
	return nil
}

// RefreshMemberCount re-derives member_count for the given teams from the
// users table. Empty ids are skipped.
func RefreshMemberCount(db *gorm.DB, teamIDs ...string) error {
	for _, id := range teamIDs {
		if id == "" {
			continue
		}
		var count int64
		if err := db.Table("users").Where("team_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count members of team %s: %w", id, err)
		}
		if err := db.Model(&Team{}).Where("id = ?", id).Update("member_count", count).Error; err != nil {
			return fmt.Errorf("failed to update member_count of team %s: %w", id, err)
		}
	}
	return nil
}
