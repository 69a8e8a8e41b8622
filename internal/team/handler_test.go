package team

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Team{}))

	database.DB = db
	return db
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	teams := r.Group("/api/teams")
	{
		teams.GET("", ListTeams)
		teams.POST("", CreateTeam)
		teams.GET("/:id", GetTeamByID)
		teams.PUT("/:id", UpdateTeam)
		teams.PATCH("/:id", PatchTeam)
		teams.DELETE("/:id", DeleteTeam)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedTeams(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]Team{
		{ID: "team_marvel", Name: "Team Marvel", Description: "Earth's Mightiest Heroes", CreatedAt: time.Now()},
		{ID: "team_dc", Name: "Team DC", Description: "Justice League United", CreatedAt: time.Now()},
	}).Error)
}

func TestListTeamsOrdersByNameByDefault(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()
	seedTeams(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 2)
	assert.Equal(t, "Team DC", teams[0].Name)
	assert.Equal(t, "Team Marvel", teams[1].Name)
}

func TestListTeamsSearchMatchesDescription(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()
	seedTeams(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/teams?search=Justice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "team_dc", teams[0].ID)
}

func TestCreateTeamKeepsProvidedID(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/teams", gin.H{
		"_id":         "team_x",
		"name":        "Team X",
		"description": "Mutants in training",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "team_x", created.ID)
}

func TestCreateTeamGeneratesIDWhenMissing(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/teams", gin.H{"name": "Team Y"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
}

func TestGetTeamByIDNotFound(t *testing.T) {
	setupTestDB(t)
	r := newRouter()

	w := doJSON(t, r, http.MethodGet, "/api/teams/team_missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "team team_missing not found", body["error"])
}

func TestPatchTeamUpdatesOnlyGivenFields(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()
	seedTeams(t, db)

	w := doJSON(t, r, http.MethodPatch, "/api/teams/team_dc", gin.H{"description": "The World's Finest"})
	require.Equal(t, http.StatusOK, w.Code)

	var patched Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, "Team DC", patched.Name)
	assert.Equal(t, "The World's Finest", patched.Description)
}

func TestDeleteTeam(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter()
	seedTeams(t, db)

	w := doJSON(t, r, http.MethodDelete, "/api/teams/team_marvel", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/teams/team_marvel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&Team{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
