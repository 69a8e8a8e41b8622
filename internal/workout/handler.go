package workout

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/query"
	"gorm.io/gorm"
)

var orderingFields = map[string]bool{
	"name":                 true,
	"duration_minutes":     true,
	"calories_per_session": true,
	"difficulty":           true,
}

type workoutRequest struct {
	Name               string `json:"name" binding:"required"`
	Type               string `json:"type" binding:"required"`
	DurationMinutes    int    `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesPerSession int    `json:"calories_per_session" binding:"required,gt=0"`
	Description        string `json:"description"`
	Difficulty         string `json:"difficulty"`
}

// ListWorkouts handles GET /api/workouts/?type=&difficulty=&search=&ordering=
func ListWorkouts(c *gin.Context) {
	q := database.DB.Model(&Workout{})
	if workoutType := c.Query("type"); workoutType != "" {
		q = q.Where("type = ?", workoutType)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		q = q.Where("difficulty = ?", difficulty)
	}
	q = query.ApplySearch(q, c.Query("search"), "name", "description")
	q = query.ApplyOrdering(q, c.Query("ordering"), orderingFields, "name")

	workouts := []Workout{}
	if err := q.Find(&workouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query workouts"})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkoutByID handles GET /api/workouts/:id
func GetWorkoutByID(c *gin.Context) {
	var w Workout
	if err := database.DB.First(&w, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("workout %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query workout"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// CreateWorkout handles POST /api/workouts/
func CreateWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w := Workout{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Type:               req.Type,
		DurationMinutes:    req.DurationMinutes,
		CaloriesPerSession: req.CaloriesPerSession,
		Description:        req.Description,
		Difficulty:         req.Difficulty,
	}
	if err := database.DB.Create(&w).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create workout: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, w)
}

// UpdateWorkout handles PUT /api/workouts/:id with a full payload.
func UpdateWorkout(c *gin.Context) {
	var w Workout
	if err := database.DB.First(&w, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("workout %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query workout"})
		return
	}

	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w.Name = req.Name
	w.Type = req.Type
	w.DurationMinutes = req.DurationMinutes
	w.CaloriesPerSession = req.CaloriesPerSession
	w.Description = req.Description
	w.Difficulty = req.Difficulty
	if err := database.DB.Save(&w).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workout"})
		return
	}
	c.JSON(http.StatusOK, w)
}

// PatchWorkout handles PATCH /api/workouts/:id with a partial payload.
func PatchWorkout(c *gin.Context) {
	var w Workout
	if err := database.DB.First(&w, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("workout %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query workout"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"name", "type", "duration_minutes", "calories_per_session", "description", "difficulty"} {
		if v, ok := raw[field]; ok {
			updates[field] = v
		}
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&w).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workout"})
			return
		}
		if err := database.DB.First(&w, "id = ?", w.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query workout"})
			return
		}
	}
	c.JSON(http.StatusOK, w)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func DeleteWorkout(c *gin.Context) {
	result := database.DB.Delete(&Workout{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workout"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("workout %s not found", c.Param("id"))})
		return
	}
	c.Status(http.StatusNoContent)
}
