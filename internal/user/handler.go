package user

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/query"
	"github.com/mergington/octofit-backend/internal/team"
	"gorm.io/gorm"
)

var orderingFields = map[string]bool{
	"name":         true,
	"total_points": true,
	"created_at":   true,
}

type userRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	HeroName string `json:"hero_name"`
	TeamID   string `json:"team_id"`
}

// ListUsers handles GET /api/users/?team_id=&email=&search=&ordering=
func ListUsers(c *gin.Context) {
	q := database.DB.Model(&User{})
	if teamID := c.Query("team_id"); teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}
	if email := c.Query("email"); email != "" {
		q = q.Where("email = ?", email)
	}
	q = query.ApplySearch(q, c.Query("search"), "name", "hero_name", "email")
	q = query.ApplyOrdering(q, c.Query("ordering"), orderingFields, "total_points desc")

	users := []User{}
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUsersByTeam handles GET /api/users/by_team?team_id=
func GetUsersByTeam(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id parameter is required"})
		return
	}

	users := []User{}
	if err := database.DB.Where("team_id = ?", teamID).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID handles GET /api/users/:id
func GetUserByID(c *gin.Context) {
	var u User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// CreateUser handles POST /api/users/
func CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing int64
	database.DB.Model(&User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user with this email already exists"})
		return
	}

	u := User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		HeroName:  req.HeroName,
		TeamID:    req.TeamID,
		CreatedAt: time.Now(),
	}
	if err := database.DB.Create(&u).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create user: " + err.Error()})
		return
	}

	if err := team.RefreshMemberCount(database.DB, u.TeamID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh team member count"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /api/users/:id with a full payload.
func UpdateUser(c *gin.Context) {
	var u User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != u.Email {
		var existing int64
		database.DB.Model(&User{}).Where("email = ? AND id <> ?", req.Email, u.ID).Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user with this email already exists"})
			return
		}
	}

	previousTeam := u.TeamID
	u.Name = req.Name
	u.Email = req.Email
	u.HeroName = req.HeroName
	u.TeamID = req.TeamID
	if err := database.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	if previousTeam != u.TeamID {
		if err := team.RefreshMemberCount(database.DB, previousTeam, u.TeamID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh team member count"})
			return
		}
	}
	c.JSON(http.StatusOK, u)
}

// PatchUser handles PATCH /api/users/:id with a partial payload.
func PatchUser(c *gin.Context) {
	var u User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	previousTeam := u.TeamID
	updates := map[string]interface{}{}
	for _, field := range []string{"name", "email", "hero_name", "team_id"} {
		if v, ok := raw[field]; ok {
			updates[field] = v
		}
	}
	if email, ok := updates["email"].(string); ok && email != u.Email {
		var existing int64
		database.DB.Model(&User{}).Where("email = ? AND id <> ?", email, u.ID).Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user with this email already exists"})
			return
		}
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&u).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
		// Re-read so the response and the member-count check see the
		// applied values, not the pre-update struct.
		if err := database.DB.First(&u, "id = ?", u.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
			return
		}
	}

	if previousTeam != u.TeamID {
		if err := team.RefreshMemberCount(database.DB, previousTeam, u.TeamID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh team member count"})
			return
		}
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	var u User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user %s not found", c.Param("id"))})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query user"})
		return
	}

	if err := database.DB.Delete(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	if err := team.RefreshMemberCount(database.DB, u.TeamID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh team member count"})
		return
	}
	c.Status(http.StatusNoContent)
}
