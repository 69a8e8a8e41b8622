package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/mergington/octofit-backend/internal/platform/config"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/startup"
	"github.com/mergington/octofit-backend/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("startup initialization failed: %v", err))
	}

	summary, err := seed.Run(database.DB, nil)
	if err != nil {
		panic(fmt.Sprintf("seeding failed: %v", err))
	}

	fmt.Println("\n=== Database Population Complete ===")
	fmt.Printf("Teams: %d\n", summary.Teams)
	fmt.Printf("Users: %d\n", summary.Users)
	fmt.Printf("Workouts: %d\n", summary.Workouts)
	fmt.Printf("Activities: %d\n", summary.Activities)
	fmt.Printf("Leaderboard entries: %d\n", summary.Leaderboard)
	fmt.Println("\nDatabase populated successfully!")
}
