package startup

import (
	"fmt"

	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/leaderboard"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"github.com/mergington/octofit-backend/internal/workout"
)

// InitializeApplication runs the one-shot startup sequence: per-module table
// migrations, an initial leaderboard build when the snapshot is empty, then
// the cache warmup.
func InitializeApplication() error {
	fmt.Println("Running startup initialization...")

	if err := team.MigrateDB(); err != nil {
		return err
	}
	if err := user.MigrateDB(); err != nil {
		return err
	}
	if err := workout.MigrateDB(); err != nil {
		return err
	}
	if err := activity.MigrateDB(); err != nil {
		return err
	}
	if err := leaderboard.MigrateDB(); err != nil {
		return err
	}

	if err := leaderboard.EnsureSnapshot(); err != nil {
		return err
	}
	if err := leaderboard.WarmupCache(); err != nil {
		return err
	}

	fmt.Println("Startup initialization complete.")
	return nil
}
