package leaderboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"gorm.io/gorm"
)

// rebuildMu keeps at most one rebuild in flight. The rebuild is invoked from
// the HTTP trigger, the background refresher and the seeder; whichever comes
// second waits.
var rebuildMu sync.Mutex

// Rebuild recomputes both leaderboard snapshots from the current activity set
// and replaces the snapshot table in a single transaction, so concurrent
// readers see either the old or the new board, never a partial one. User
// point totals are re-derived in the same transaction to keep them aligned
// with the board. The rendered-board cache is dropped afterwards.
func Rebuild(db *gorm.DB) error {
	rebuildMu.Lock()
	defer rebuildMu.Unlock()

	var users []user.User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var teams []team.Team
	if err := db.Order("id asc").Find(&teams).Error; err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var activities []activity.Activity
	if err := db.Order("id asc").Find(&activities).Error; err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}

	now := time.Now()
	entries := BuildIndividual(users, activities, now)
	entries = append(entries, BuildTeam(teams, activities, now)...)
	totals := UserTotals(users, activities)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM leaderboard").Error; err != nil {
			return fmt.Errorf("failed to clear leaderboard: %w", err)
		}
		if len(entries) > 0 {
			if err := tx.CreateInBatches(entries, 200).Error; err != nil {
				return fmt.Errorf("failed to insert leaderboard entries: %w", err)
			}
		}
		for _, u := range users {
			if u.TotalPoints == totals[u.ID] {
				continue
			}
			if err := tx.Model(&user.User{}).Where("id = ?", u.ID).Update("total_points", totals[u.ID]).Error; err != nil {
				return fmt.Errorf("failed to update total_points for user %s: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	InvalidateCache()
	return nil
}
