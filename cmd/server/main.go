package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mergington/octofit-backend/api"
	"github.com/mergington/octofit-backend/internal/leaderboard"
	"github.com/mergington/octofit-backend/internal/platform/config"
	"github.com/mergington/octofit-backend/internal/platform/database"
	"github.com/mergington/octofit-backend/internal/platform/startup"
	"github.com/mergington/octofit-backend/pkg/lifecycle"
)

func main() {
	// .env is optional; config defaults cover local development.
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

	// Background snapshot refresher.
	manager := lifecycle.NewManager()
	refresherHandle, err := manager.NewServiceHandle("leaderboard-refresher")
	if err != nil {
		panic(err)
	}
	go leaderboard.StartRefresher(refresherHandle, cfg.Leaderboard.RefreshInterval)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("Server ready, listening on %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("failed to start server: " + err.Error())
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("HTTP server shutdown error: %v\n", err)
	}

	// Let an in-flight rebuild finish before the process exits.
	manager.Shutdown()
	if remaining := manager.WaitWithTimeout(30 * time.Second); len(remaining) > 0 {
		fmt.Printf("Services still running at exit: %v\n", remaining)
	}

	fmt.Println("Shutdown complete.")
}
