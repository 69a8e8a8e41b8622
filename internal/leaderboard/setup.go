package leaderboard

import (
	"fmt"

	"github.com/mergington/octofit-backend/internal/platform/database"
)

// MigrateDB creates or updates the leaderboard snapshot table.
func MigrateDB() error {
	if err := database.DB.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate leaderboard table: %w", err)
	}
	return nil
}

// EnsureSnapshot builds the snapshot table when it is empty, so a fresh
// database serves boards immediately instead of waiting for the first
// scheduled rebuild.
func EnsureSnapshot() error {
	var count int64
	if err := database.DB.Model(&Entry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count leaderboard entries: %w", err)
	}
	if count > 0 {
		return nil
	}
	return Rebuild(database.DB)
}

// WarmupCache primes the Redis board cache from the current snapshot so the
// first reads after startup skip the database. A cold or disabled cache is
// not an error.
func WarmupCache() error {
	if database.RDB == nil {
		return nil
	}

	for boardType, key := range map[string]string{
		TypeIndividual: IndividualCacheKey,
		TypeTeam:       TeamCacheKey,
	} {
		entries := []Entry{}
		err := database.DB.
			Where("leaderboard_type = ?", boardType).
			Order("rank asc").
			Find(&entries).Error
		if err != nil {
			return fmt.Errorf("failed to load %s leaderboard: %w", boardType, err)
		}
		storeBoard(key, entries)
	}
	return nil
}
