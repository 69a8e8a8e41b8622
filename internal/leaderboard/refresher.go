package leaderboard

import (
	"log"
	"time"

	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/pkg/lifecycle"
)

// StartRefresher rebuilds the snapshot on the given interval until shutdown.
// Run it in its own goroutine; a non-positive interval disables the loop.
func StartRefresher(handle *lifecycle.Handle, interval time.Duration) {
	defer handle.Close()

	if interval <= 0 {
		return
	}

	for {
		if err := handle.Sleep(interval); err != nil {
			return
		}
		if err := Rebuild(database.DB); err != nil {
			log.Printf("leaderboard: scheduled rebuild failed: %v", err)
		}
	}
}
