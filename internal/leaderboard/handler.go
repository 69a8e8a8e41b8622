package leaderboard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/query"
	"gorm.io/gorm"
)

var orderingFields = map[string]bool{
	"rank":         true,
	"total_points": true,
}

// ListLeaderboard handles GET /api/leaderboard/?leaderboard_type=&team_id=&ordering=
func ListLeaderboard(c *gin.Context) {
	q := database.DB.Model(&Entry{})
	if boardType := c.Query("leaderboard_type"); boardType != "" {
		q = q.Where("leaderboard_type = ?", boardType)
	}
	if teamID := c.Query("team_id"); teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}
	q = query.ApplyOrdering(q, c.Query("ordering"), orderingFields, "rank")

	entries := []Entry{}
	if err := q.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetEntryByID handles GET /api/leaderboard/:id
func GetEntryByID(c *gin.Context) {
	var e Entry
	if err := database.DB.First(&e, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("leaderboard entry %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query leaderboard"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// GetIndividualLeaderboard handles GET /api/leaderboard/individual
func GetIndividualLeaderboard(c *gin.Context) {
	serveBoard(c, TypeIndividual, IndividualCacheKey)
}

// GetTeamLeaderboard handles GET /api/leaderboard/team
func GetTeamLeaderboard(c *gin.Context) {
	serveBoard(c, TypeTeam, TeamCacheKey)
}

func serveBoard(c *gin.Context, boardType, cacheKey string) {
	if entries, ok := cachedBoard(cacheKey); ok {
		c.JSON(http.StatusOK, entries)
		return
	}

	entries := []Entry{}
	err := database.DB.
		Where("leaderboard_type = ?", boardType).
		Order("rank asc").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query leaderboard"})
		return
	}

	storeBoard(cacheKey, entries)
	c.JSON(http.StatusOK, entries)
}

// RebuildLeaderboard handles POST /api/leaderboard/rebuild, recomputing both
// snapshots on demand.
func RebuildLeaderboard(c *gin.Context) {
	if err := Rebuild(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard rebuild failed: " + err.Error()})
		return
	}

	var count int64
	database.DB.Model(&Entry{}).Count(&count)
	c.JSON(http.StatusOK, gin.H{"message": "leaderboard rebuilt", "entries": count})
}
