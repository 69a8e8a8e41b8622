package activity

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/query"
	"github.com/mergington/octofit-backend/internal/user"
	"gorm.io/gorm"
)

var orderingFields = map[string]bool{
	"date":             true,
	"points":           true,
	"calories_burned":  true,
	"duration_minutes": true,
}

type activityRequest struct {
	UserID          string    `json:"user_id" binding:"required"`
	ActivityType    string    `json:"activity_type" binding:"required"`
	WorkoutName     string    `json:"workout_name"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesBurned  int       `json:"calories_burned"`
	Points          int       `json:"points"`
	Date            time.Time `json:"date"`
	Notes           string    `json:"notes"`
}

// ListActivities handles GET /api/activities/?user_id=&team_id=&activity_type=&search=&ordering=
func ListActivities(c *gin.Context) {
	q := database.DB.Model(&Activity{})
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if teamID := c.Query("team_id"); teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}
	if activityType := c.Query("activity_type"); activityType != "" {
		q = q.Where("activity_type = ?", activityType)
	}
	q = query.ApplySearch(q, c.Query("search"), "user_name", "hero_name", "workout_name")
	q = query.ApplyOrdering(q, c.Query("ordering"), orderingFields, "date desc")

	activities := []Activity{}
	if err := q.Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivitiesByUser handles GET /api/activities/by_user?user_id=
func GetActivitiesByUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id parameter is required"})
		return
	}

	activities := []Activity{}
	if err := database.DB.Where("user_id = ?", userID).Order("date desc").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivitiesByTeam handles GET /api/activities/by_team?team_id=
func GetActivitiesByTeam(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id parameter is required"})
		return
	}

	activities := []Activity{}
	if err := database.DB.Where("team_id = ?", teamID).Order("date desc").Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activities"})
		return
	}
	c.JSON(http.StatusOK, activities)
}

// GetActivityByID handles GET /api/activities/:id
func GetActivityByID(c *gin.Context) {
	var a Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("activity %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activity"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateActivity handles POST /api/activities/. The referenced user must
// exist; their identity fields are copied onto the activity at write time and
// their cached point total is re-derived afterwards.
func CreateActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var u user.User
	if err := database.DB.First(&u, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("user %s does not exist", req.UserID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}

	a := Activity{
		ID:              uuid.NewString(),
		UserID:          u.ID,
		UserEmail:       u.Email,
		UserName:        u.Name,
		HeroName:        u.HeroName,
		TeamID:          u.TeamID,
		ActivityType:    req.ActivityType,
		WorkoutName:     req.WorkoutName,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Points:          req.Points,
		Date:            req.Date,
		Notes:           req.Notes,
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}

	if err := database.DB.Create(&a).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create activity: " + err.Error()})
		return
	}
	if err := RefreshUserTotals(database.DB, a.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh user totals"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateActivity handles PUT /api/activities/:id with a full payload.
func UpdateActivity(c *gin.Context) {
	var a Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("activity %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activity"})
		return
	}

	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var u user.User
	if err := database.DB.First(&u, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("user %s does not exist", req.UserID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}

	previousUser := a.UserID
	a.UserID = u.ID
	a.UserEmail = u.Email
	a.UserName = u.Name
	a.HeroName = u.HeroName
	a.TeamID = u.TeamID
	a.ActivityType = req.ActivityType
	a.WorkoutName = req.WorkoutName
	a.DurationMinutes = req.DurationMinutes
	a.CaloriesBurned = req.CaloriesBurned
	a.Points = req.Points
	if !req.Date.IsZero() {
		a.Date = req.Date
	}
	a.Notes = req.Notes

	if err := database.DB.Save(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
		return
	}
	if err := RefreshUserTotals(database.DB, previousUser, a.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh user totals"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// PatchActivity handles PATCH /api/activities/:id with a partial payload.
// Changing user_id re-resolves the denormalized identity fields.
func PatchActivity(c *gin.Context) {
	var a Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("activity %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activity"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previousUser := a.UserID
	updates := map[string]interface{}{}
	for _, field := range []string{"activity_type", "workout_name", "duration_minutes", "calories_burned", "points", "date", "notes"} {
		if v, ok := raw[field]; ok {
			updates[field] = v
		}
	}
	if v, ok := raw["user_id"].(string); ok && v != a.UserID {
		var u user.User
		if err := database.DB.First(&u, "id = ?", v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("user %s does not exist", v)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
			return
		}
		updates["user_id"] = u.ID
		updates["user_email"] = u.Email
		updates["user_name"] = u.Name
		updates["hero_name"] = u.HeroName
		updates["team_id"] = u.TeamID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&a).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update activity"})
			return
		}
		if err := database.DB.First(&a, "id = ?", a.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activity"})
			return
		}
		if err := RefreshUserTotals(database.DB, previousUser, a.UserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh user totals"})
			return
		}
	}
	c.JSON(http.StatusOK, a)
}

// DeleteActivity handles DELETE /api/activities/:id
func DeleteActivity(c *gin.Context) {
	var a Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("activity %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query activity"})
		return
	}

	if err := database.DB.Delete(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete activity"})
		return
	}
	if err := RefreshUserTotals(database.DB, a.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh user totals"})
		return
	}
	c.Status(http.StatusNoContent)
}
