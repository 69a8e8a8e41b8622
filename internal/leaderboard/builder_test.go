package leaderboard

import (
	"testing"
	"time"

	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUser(id, name, hero, teamID string) user.User {
	return user.User{
		ID:       id,
		Name:     name,
		Email:    id + "@heroes.test",
		HeroName: hero,
		TeamID:   teamID,
	}
}

func makeActivity(id, userID, teamID string, points int) activity.Activity {
	return activity.Activity{
		ID:     id,
		UserID: userID,
		TeamID: teamID,
		Points: points,
		Date:   time.Now(),
	}
}

func TestBuildIndividualRanksByDescendingPoints(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-b", "Bob", "Hero B", "team_one"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 60),
		makeActivity("a2", "u-a", "team_one", 40),
		makeActivity("a3", "u-b", "team_one", 150),
	}

	entries := BuildIndividual(users, activities, time.Now())
	require.Len(t, entries, 2)

	assert.Equal(t, "Hero B", entries[0].HeroName)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 150, entries[0].TotalPoints)

	assert.Equal(t, "Hero A", entries[1].HeroName)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 100, entries[1].TotalPoints)
}

func TestBuildIndividualConservesPoints(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-b", "Bob", "Hero B", "team_one"),
		makeUser("u-c", "Cara", "Hero C", "team_two"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 13),
		makeActivity("a2", "u-b", "team_one", 27),
		makeActivity("a3", "u-b", "team_one", 5),
		makeActivity("a4", "u-c", "team_two", 81),
	}

	entries := BuildIndividual(users, activities, time.Now())

	activitySum := 0
	for _, a := range activities {
		activitySum += a.Points
	}
	entrySum := 0
	for _, e := range entries {
		entrySum += e.TotalPoints
	}
	assert.Equal(t, activitySum, entrySum)
}

func TestBuildIndividualRanksAreContiguous(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-b", "Bob", "Hero B", "team_one"),
		makeUser("u-c", "Cara", "Hero C", "team_two"),
		makeUser("u-d", "Dave", "Hero D", "team_two"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-b", "team_one", 50),
		makeActivity("a2", "u-d", "team_two", 50),
	}

	entries := BuildIndividual(users, activities, time.Now())
	require.Len(t, entries, len(users))

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
	}
}

func TestBuildIndividualTiesKeepInputOrder(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-b", "Bob", "Hero B", "team_one"),
		makeUser("u-c", "Cara", "Hero C", "team_one"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 70),
		makeActivity("a2", "u-b", "team_one", 70),
		makeActivity("a3", "u-c", "team_one", 70),
	}

	entries := BuildIndividual(users, activities, time.Now())
	require.Len(t, entries, 3)

	// Equal totals: the stable sort must preserve the user slice order.
	assert.Equal(t, []string{"u-a", "u-b", "u-c"},
		[]string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
}

func TestBuildIndividualIncludesUsersWithoutActivities(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-idle", "Ivy", "Hero Idle", "team_one"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 10),
	}

	entries := BuildIndividual(users, activities, time.Now())
	require.Len(t, entries, 2)

	last := entries[len(entries)-1]
	assert.Equal(t, "u-idle", last.UserID)
	assert.Equal(t, 0, last.TotalPoints)
	assert.Equal(t, 2, last.Rank)
}

func TestBuildIndividualSkipsUnknownUsers(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 30),
		makeActivity("a2", "u-ghost", "team_one", 999),
	}

	entries := BuildIndividual(users, activities, time.Now())
	require.Len(t, entries, 1)
	assert.Equal(t, 30, entries[0].TotalPoints)
}

func TestBuildIndividualIsDeterministic(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-b", "Bob", "Hero B", "team_one"),
		makeUser("u-c", "Cara", "Hero C", "team_two"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 40),
		makeActivity("a2", "u-b", "team_one", 40),
		makeActivity("a3", "u-c", "team_two", 90),
	}

	now := time.Now()
	first := BuildIndividual(users, activities, now)
	second := BuildIndividual(users, activities, now)
	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.Equal(t, first[i].UserID, second[i].UserID)
		assert.Equal(t, first[i].Rank, second[i].Rank)
		assert.Equal(t, first[i].TotalPoints, second[i].TotalPoints)
	}
}

func TestBuildIndividualDenormalizesUserFields(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
	}

	entries := BuildIndividual(users, nil, time.Now())
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, TypeIndividual, e.LeaderboardType)
	assert.Equal(t, "u-a", e.UserID)
	assert.Equal(t, "u-a@heroes.test", e.UserEmail)
	assert.Equal(t, "Alice", e.UserName)
	assert.Equal(t, "Hero A", e.HeroName)
	assert.Equal(t, "team_one", e.TeamID)
	assert.Empty(t, e.TeamName)
}

func TestBuildTeamAggregatesAcrossMembers(t *testing.T) {
	teams := []team.Team{
		{ID: "team_one", Name: "Team One"},
		{ID: "team_two", Name: "Team Two"},
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 30),
		makeActivity("a2", "u-b", "team_one", 30),
		makeActivity("a3", "u-c", "team_two", 100),
		makeActivity("a4", "u-ghost", "team_ghost", 500),
	}

	entries := BuildTeam(teams, activities, time.Now())
	require.Len(t, entries, 2)

	assert.Equal(t, "team_two", entries[0].TeamID)
	assert.Equal(t, "Team Two", entries[0].TeamName)
	assert.Equal(t, 100, entries[0].TotalPoints)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, TypeTeam, entries[0].LeaderboardType)

	assert.Equal(t, "team_one", entries[1].TeamID)
	assert.Equal(t, 60, entries[1].TotalPoints)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestUserTotals(t *testing.T) {
	users := []user.User{
		makeUser("u-a", "Alice", "Hero A", "team_one"),
		makeUser("u-idle", "Ivy", "Hero Idle", "team_one"),
	}
	activities := []activity.Activity{
		makeActivity("a1", "u-a", "team_one", 10),
		makeActivity("a2", "u-a", "team_one", 25),
		makeActivity("a3", "u-ghost", "team_one", 99),
	}

	totals := UserTotals(users, activities)
	assert.Equal(t, 35, totals["u-a"])
	assert.Equal(t, 0, totals["u-idle"])
	assert.NotContains(t, totals, "u-ghost")
}
