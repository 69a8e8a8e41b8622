// Package seed populates the database with the superhero sample dataset and
// derives the initial leaderboard from it.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/leaderboard"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"github.com/mergington/octofit-backend/internal/workout"
	"gorm.io/gorm"
)

var activityTypes = []string{"running", "cycling", "swimming", "weightlifting", "yoga", "hiit"}

// Summary reports what a seeding run inserted.
type Summary struct {
	Teams       int
	Users       int
	Workouts    int
	Activities  int
	Leaderboard int
}

// Run wipes all five tables and repopulates them: 2 teams, 10 heroes,
// 6 workouts, 10-20 random activities per user over the past 30 days. Member
// counts are set from the inserted users and the leaderboard rebuild derives
// user totals and both boards. A nil rng falls back to a time-seeded one.
func Run(db *gorm.DB, rng *rand.Rand) (*Summary, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	fmt.Println("Clearing existing data...")
	for _, table := range []string{"activities", "leaderboard", "users", "teams", "workouts"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	teams := sampleTeams()
	if err := db.Create(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to insert teams: %w", err)
	}
	fmt.Printf("Inserted %d teams\n", len(teams))

	users := sampleUsers()
	if err := db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to insert users: %w", err)
	}
	fmt.Printf("Inserted %d users\n", len(users))

	teamIDs := make([]string, 0, len(teams))
	for _, t := range teams {
		teamIDs = append(teamIDs, t.ID)
	}
	if err := team.RefreshMemberCount(db, teamIDs...); err != nil {
		return nil, err
	}

	workouts := sampleWorkouts()
	if err := db.Create(&workouts).Error; err != nil {
		return nil, fmt.Errorf("failed to insert workouts: %w", err)
	}
	fmt.Printf("Inserted %d workouts\n", len(workouts))

	activities := generateActivities(users, workouts, rng)
	if err := db.CreateInBatches(activities, 200).Error; err != nil {
		return nil, fmt.Errorf("failed to insert activities: %w", err)
	}
	fmt.Printf("Inserted %d activities\n", len(activities))

	// Derives user totals and both ranked boards from the activities.
	if err := leaderboard.Rebuild(db); err != nil {
		return nil, err
	}

	var boardCount int64
	if err := db.Model(&leaderboard.Entry{}).Count(&boardCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count leaderboard entries: %w", err)
	}
	fmt.Printf("Inserted %d leaderboard entries\n", boardCount)

	return &Summary{
		Teams:       len(teams),
		Users:       len(users),
		Workouts:    len(workouts),
		Activities:  len(activities),
		Leaderboard: int(boardCount),
	}, nil
}

// generateActivities creates 10-20 random activities per user over the past
// 30 days, jittered around a randomly chosen workout.
func generateActivities(users []user.User, workouts []workout.Workout, rng *rand.Rand) []activity.Activity {
	var activities []activity.Activity
	now := time.Now()

	for _, u := range users {
		count := 10 + rng.Intn(11)
		for i := 0; i < count; i++ {
			w := workouts[rng.Intn(len(workouts))]
			duration := w.DurationMinutes + rng.Intn(21) - 10
			calories := w.CaloriesPerSession + rng.Intn(101) - 50
			points := calories/10 + rng.Intn(21)
			date := now.AddDate(0, 0, -rng.Intn(31))

			activities = append(activities, activity.Activity{
				ID:              uuid.NewString(),
				UserID:          u.ID,
				UserEmail:       u.Email,
				UserName:        u.Name,
				HeroName:        u.HeroName,
				TeamID:          u.TeamID,
				ActivityType:    activityTypes[rng.Intn(len(activityTypes))],
				WorkoutName:     w.Name,
				DurationMinutes: duration,
				CaloriesBurned:  calories,
				Points:          points,
				Date:            date,
				Notes:           fmt.Sprintf("%s saving the world one workout at a time!", u.HeroName),
			})
		}
	}
	return activities
}

func sampleTeams() []team.Team {
	now := time.Now()
	return []team.Team{
		{ID: "team_marvel", Name: "Team Marvel", Description: "Earth's Mightiest Heroes", CreatedAt: now},
		{ID: "team_dc", Name: "Team DC", Description: "Justice League United", CreatedAt: now},
	}
}

func sampleUsers() []user.User {
	now := time.Now()
	heroes := []struct {
		name, email, hero, teamID string
	}{
		{"Tony Stark", "ironman@marvel.com", "Iron Man", "team_marvel"},
		{"Steve Rogers", "captainamerica@marvel.com", "Captain America", "team_marvel"},
		{"Natasha Romanoff", "blackwidow@marvel.com", "Black Widow", "team_marvel"},
		{"Bruce Banner", "hulk@marvel.com", "Hulk", "team_marvel"},
		{"Thor Odinson", "thor@marvel.com", "Thor", "team_marvel"},
		{"Clark Kent", "superman@dc.com", "Superman", "team_dc"},
		{"Bruce Wayne", "batman@dc.com", "Batman", "team_dc"},
		{"Diana Prince", "wonderwoman@dc.com", "Wonder Woman", "team_dc"},
		{"Barry Allen", "flash@dc.com", "Flash", "team_dc"},
		{"Arthur Curry", "aquaman@dc.com", "Aquaman", "team_dc"},
	}

	users := make([]user.User, 0, len(heroes))
	for _, h := range heroes {
		users = append(users, user.User{
			ID:        uuid.NewString(),
			Name:      h.name,
			Email:     h.email,
			HeroName:  h.hero,
			TeamID:    h.teamID,
			CreatedAt: now,
		})
	}
	return users
}

func sampleWorkouts() []workout.Workout {
	catalog := []workout.Workout{
		{Name: "Super Strength Training", Type: "strength", DurationMinutes: 45, CaloriesPerSession: 400, Description: "Build strength like a superhero", Difficulty: "advanced"},
		{Name: "Speed Force Cardio", Type: "cardio", DurationMinutes: 30, CaloriesPerSession: 350, Description: "Run at lightning speed", Difficulty: "intermediate"},
		{Name: "Avenger Yoga", Type: "flexibility", DurationMinutes: 60, CaloriesPerSession: 200, Description: "Find your inner peace", Difficulty: "beginner"},
		{Name: "Justice League HIIT", Type: "hiit", DurationMinutes: 25, CaloriesPerSession: 450, Description: "High intensity heroic training", Difficulty: "advanced"},
		{Name: "Web-Slinging Workout", Type: "mixed", DurationMinutes: 40, CaloriesPerSession: 380, Description: "Full body workout", Difficulty: "intermediate"},
		{Name: "Asgardian Battle Training", Type: "strength", DurationMinutes: 50, CaloriesPerSession: 420, Description: "Train like a god", Difficulty: "advanced"},
	}
	for i := range catalog {
		catalog[i].ID = uuid.NewString()
	}
	return catalog
}
