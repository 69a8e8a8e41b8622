package team

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/query"
	"gorm.io/gorm"
)

var orderingFields = map[string]bool{
	"name":         true,
	"member_count": true,
	"created_at":   true,
}

type teamRequest struct {
	ID          string `json:"_id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListTeams handles GET /api/teams/?search=&ordering=
func ListTeams(c *gin.Context) {
	q := database.DB.Model(&Team{})
	q = query.ApplySearch(q, c.Query("search"), "name", "description")
	q = query.ApplyOrdering(q, c.Query("ordering"), orderingFields, "name")

	teams := []Team{}
	if err := q.Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query teams"})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeamByID handles GET /api/teams/:id
func GetTeamByID(c *gin.Context) {
	var t Team
	if err := database.DB.First(&t, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("team %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query team"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTeam handles POST /api/teams/
func CreateTeam(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t := Team{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if err := database.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create team: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTeam handles PUT /api/teams/:id with a full payload.
func UpdateTeam(c *gin.Context) {
	var t Team
	if err := database.DB.First(&t, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("team %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query team"})
		return
	}

	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t.Name = req.Name
	t.Description = req.Description
	if err := database.DB.Save(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// PatchTeam handles PATCH /api/teams/:id with a partial payload.
func PatchTeam(c *gin.Context) {
	var t Team
	if err := database.DB.First(&t, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("team %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query team"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for _, field := range []string{"name", "description"} {
		if v, ok := raw[field]; ok {
			updates[field] = v
		}
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&t).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team"})
			return
		}
		if err := database.DB.First(&t, "id = ?", t.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query team"})
			return
		}
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTeam handles DELETE /api/teams/:id
func DeleteTeam(c *gin.Context) {
	result := database.DB.Delete(&Team{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("team %s not found", c.Param("id"))})
		return
	}
	c.Status(http.StatusNoContent)
}
