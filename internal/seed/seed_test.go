package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/leaderboard"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"github.com/mergington/octofit-backend/internal/workout"
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
	require.NoError(t, db.AutoMigrate(
		&team.Team{}, &user.User{}, &workout.Workout{}, &activity.Activity{}, &leaderboard.Entry{},
	))

	database.DB = db
	return db
}

func TestRunPopulatesSampleDataset(t *testing.T) {
	db := setupTestDB(t)

	summary, err := Run(db, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Teams)
	assert.Equal(t, 10, summary.Users)
	assert.Equal(t, 6, summary.Workouts)
	// 10 individual entries plus 2 team entries.
	assert.Equal(t, 12, summary.Leaderboard)
	assert.GreaterOrEqual(t, summary.Activities, 100)
	assert.LessOrEqual(t, summary.Activities, 200)
}

func TestRunGeneratesActivitiesPerUserInRange(t *testing.T) {
	db := setupTestDB(t)

	_, err := Run(db, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var users []user.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 10)

	for _, u := range users {
		var count int64
		require.NoError(t, db.Model(&activity.Activity{}).Where("user_id = ?", u.ID).Count(&count).Error)
		assert.GreaterOrEqual(t, count, int64(10), "user %s", u.HeroName)
		assert.LessOrEqual(t, count, int64(20), "user %s", u.HeroName)
	}
}

func TestRunDerivesTotalsAndMemberCounts(t *testing.T) {
	db := setupTestDB(t)

	_, err := Run(db, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	var activitySum, userSum int64
	require.NoError(t, db.Model(&activity.Activity{}).Select("COALESCE(SUM(points), 0)").Scan(&activitySum).Error)
	require.NoError(t, db.Model(&user.User{}).Select("COALESCE(SUM(total_points), 0)").Scan(&userSum).Error)
	assert.Equal(t, activitySum, userSum)

	var teams []team.Team
	require.NoError(t, db.Order("id asc").Find(&teams).Error)
	require.Len(t, teams, 2)
	for _, tm := range teams {
		assert.Equal(t, 5, tm.MemberCount, "team %s", tm.ID)
	}
}

func TestRunActivitiesFallWithinPastThirtyDays(t *testing.T) {
	db := setupTestDB(t)

	_, err := Run(db, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	var activities []activity.Activity
	require.NoError(t, db.Find(&activities).Error)
	require.NotEmpty(t, activities)

	cutoff := time.Now().AddDate(0, 0, -31)
	for _, a := range activities {
		assert.True(t, a.Date.After(cutoff), "activity %s dated %s", a.ID, a.Date)
		assert.NotEmpty(t, a.UserEmail)
		assert.NotEmpty(t, a.WorkoutName)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	db := setupTestDB(t)

	_, err := Run(db, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	summary, err := Run(db, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	// A second run replaces the dataset instead of stacking on top of it.
	var userCount, boardCount int64
	require.NoError(t, db.Model(&user.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&leaderboard.Entry{}).Count(&boardCount).Error)
	assert.Equal(t, int64(10), userCount)
	assert.Equal(t, int64(12), boardCount)
	assert.Equal(t, 12, summary.Leaderboard)
}
