package leaderboard

import (
	"encoding/json"
	"time"

	"github.com/mergington/octofit-backend/internal/platform/config"
	"github.com/mergington/octofit-backend/internal/platform/database"
)

// Redis keys for the rendered boards.
const (
	IndividualCacheKey = "leaderboard:individual"
	TeamCacheKey       = "leaderboard:team"
)

func cacheTTL() time.Duration {
	if config.Cfg != nil && config.Cfg.Leaderboard.CacheTTL > 0 {
		return config.Cfg.Leaderboard.CacheTTL
	}
	return 10 * time.Minute
}

// cachedBoard returns the cached board for the key, or false when the cache
// is disabled, cold or unreadable. Cache failures never fail a request.
func cachedBoard(key string) ([]Entry, bool) {
	if database.RDB == nil {
		return nil, false
	}
	payload, err := database.RDB.Get(database.Ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// storeBoard writes the board to the cache, best effort.
func storeBoard(key string, entries []Entry) {
	if database.RDB == nil {
		return
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	database.RDB.Set(database.Ctx, key, payload, cacheTTL())
}

// InvalidateCache drops both rendered boards so the next read reflects the
// freshly rebuilt snapshot.
func InvalidateCache() {
	if database.RDB == nil {
		return
	}
	database.RDB.Del(database.Ctx, IndividualCacheKey, TeamCacheKey)
}
