package leaderboard

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
)

// BuildIndividual aggregates activity points per user and returns the ranked
// individual board. Every user appears, including those with no activities
// (total 0). Ranks are dense and 1-based; equal totals keep the input order
// of the user slice. Activities referencing an unknown user are skipped and
// logged rather than failing the build.
func BuildIndividual(users []user.User, activities []activity.Activity, now time.Time) []Entry {
	totals := make(map[string]int, len(users))
	for _, u := range users {
		totals[u.ID] = 0
	}
	for _, a := range activities {
		if _, ok := totals[a.UserID]; !ok {
			log.Printf("leaderboard: skipping activity %s: unknown user %s", a.ID, a.UserID)
			continue
		}
		totals[a.UserID] += a.Points
	}

	ranked := make([]user.User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i].ID] > totals[ranked[j].ID]
	})

	entries := make([]Entry, 0, len(ranked))
	for i, u := range ranked {
		entries = append(entries, Entry{
			ID:              uuid.NewString(),
			LeaderboardType: TypeIndividual,
			Rank:            i + 1,
			TotalPoints:     totals[u.ID],
			LastUpdated:     now,
			UserID:          u.ID,
			UserEmail:       u.Email,
			UserName:        u.Name,
			HeroName:        u.HeroName,
			TeamID:          u.TeamID,
		})
	}
	return entries
}

// BuildTeam is the same algorithm grouped by team instead of user.
func BuildTeam(teams []team.Team, activities []activity.Activity, now time.Time) []Entry {
	totals := make(map[string]int, len(teams))
	for _, t := range teams {
		totals[t.ID] = 0
	}
	for _, a := range activities {
		if _, ok := totals[a.TeamID]; !ok {
			log.Printf("leaderboard: skipping activity %s: unknown team %s", a.ID, a.TeamID)
			continue
		}
		totals[a.TeamID] += a.Points
	}

	ranked := make([]team.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i].ID] > totals[ranked[j].ID]
	})

	entries := make([]Entry, 0, len(ranked))
	for i, t := range ranked {
		entries = append(entries, Entry{
			ID:              uuid.NewString(),
			LeaderboardType: TypeTeam,
			Rank:            i + 1,
			TotalPoints:     totals[t.ID],
			LastUpdated:     now,
			TeamID:          t.ID,
			TeamName:        t.Name,
		})
	}
	return entries
}

// UserTotals returns the per-user point sums the individual board is built
// from, with a zero for every user without activities. Used to re-establish
// the users.total_points cache in the same pass as the board rebuild.
func UserTotals(users []user.User, activities []activity.Activity) map[string]int {
	totals := make(map[string]int, len(users))
	for _, u := range users {
		totals[u.ID] = 0
	}
	for _, a := range activities {
		if _, ok := totals[a.UserID]; !ok {
			continue
		}
		totals[a.UserID] += a.Points
	}
	return totals
}
