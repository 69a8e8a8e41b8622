package activity

import (
	"fmt"

	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/user"
	"gorm.io/gorm"
)

// MigrateDB creates or updates the activities table.
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Activity{}); err != nil {
		return fmt.Errorf("failed to migrate activities table: %w", err)
	}
	return nil
}

// RefreshUserTotals re-derives total_points for the given users from their
// activities, keeping the cached total consistent after any activity write.
// Empty ids are skipped.
func RefreshUserTotals(db *gorm.DB, userIDs ...string) error {
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		var total int64
		err := db.Model(&Activity{}).
			Where("user_id = ?", id).
			Select("COALESCE(SUM(points), 0)").
			Scan(&total).Error
		if err != nil {
			return fmt.Errorf("failed to sum points for user %s: %w", id, err)
		}
		if err := db.Model(&user.User{}).Where("id = ?", id).Update("total_points", total).Error; err != nil {
			return fmt.Errorf("failed to update total_points for user %s: %w", id, err)
		}
	}
	return nil
}
