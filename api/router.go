package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mergington/octofit-backend/internal/activity"
	"github.com/mergington/octofit-backend/internal/leaderboard"
	"github.com/mergington/octofit-backend/internal/team"
	"github.com/mergington/octofit-backend/internal/user"
	"github.com/mergington/octofit-backend/internal/workout"
)

// SetupRoutes registers every API route on the engine.
func SetupRoutes(router *gin.Engine) {
	router.GET("/", apiRoot)

	api := router.Group("/api")
	{
		teamRoutes := api.Group("/teams")
		{
			teamRoutes.GET("", team.ListTeams)
			teamRoutes.POST("", team.CreateTeam)
			teamRoutes.GET("/:id", team.GetTeamByID)
			teamRoutes.PUT("/:id", team.UpdateTeam)
			teamRoutes.PATCH("/:id", team.PatchTeam)
			teamRoutes.DELETE("/:id", team.DeleteTeam)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", user.ListUsers)
			userRoutes.POST("", user.CreateUser)
			userRoutes.GET("/by_team", user.GetUsersByTeam)
			userRoutes.GET("/:id", user.GetUserByID)
			userRoutes.PUT("/:id", user.UpdateUser)
			userRoutes.PATCH("/:id", user.PatchUser)
			userRoutes.DELETE("/:id", user.DeleteUser)
		}

		workoutRoutes := api.Group("/workouts")
		{
			workoutRoutes.GET("", workout.ListWorkouts)
			workoutRoutes.POST("", workout.CreateWorkout)
			workoutRoutes.GET("/:id", workout.GetWorkoutByID)
			workoutRoutes.PUT("/:id", workout.UpdateWorkout)
			workoutRoutes.PATCH("/:id", workout.PatchWorkout)
			workoutRoutes.DELETE("/:id", workout.DeleteWorkout)
		}

		activityRoutes := api.Group("/activities")
		{
			activityRoutes.GET("", activity.ListActivities)
			activityRoutes.POST("", activity.CreateActivity)
			activityRoutes.GET("/by_user", activity.GetActivitiesByUser)
			activityRoutes.GET("/by_team", activity.GetActivitiesByTeam)
			activityRoutes.GET("/:id", activity.GetActivityByID)
			activityRoutes.PUT("/:id", activity.UpdateActivity)
			activityRoutes.PATCH("/:id", activity.PatchActivity)
			activityRoutes.DELETE("/:id", activity.DeleteActivity)
		}

		// The leaderboard is read-only apart from the explicit rebuild trigger.
		leaderboardRoutes := api.Group("/leaderboard")
		{
			leaderboardRoutes.GET("", leaderboard.ListLeaderboard)
			leaderboardRoutes.GET("/individual", leaderboard.GetIndividualLeaderboard)
			leaderboardRoutes.GET("/team", leaderboard.GetTeamLeaderboard)
			leaderboardRoutes.POST("/rebuild", leaderboard.RebuildLeaderboard)
			leaderboardRoutes.GET("/:id", leaderboard.GetEntryByID)
		}
	}
}

// apiRoot lists the available resource URLs, built from the request host.
func apiRoot(c *gin.Context) {
	base := fmt.Sprintf("http://%s", c.Request.Host)
	c.JSON(http.StatusOK, gin.H{
		"teams":       base + "/api/teams/",
		"users":       base + "/api/users/",
		"activities":  base + "/api/activities/",
		"workouts":    base + "/api/workouts/",
		"leaderboard": base + "/api/leaderboard/",
	})
}
