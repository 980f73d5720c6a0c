package api

import (
	"alcyxob/exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)

	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())

	// Static landing page with the registration and exercise forms.
	router.StaticFile("/", "./views/index.html")
	router.Static("/public", "./public")

	api := router.Group("/api")
	{
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users", userHandler.ListUsers)

		// Exercise routes are scoped to one user; ":_id" keeps the path
		// parameter name of the public API.
		api.POST("/users/:_id/exercises", exerciseHandler.AddExercise)
		api.GET("/users/:_id/logs", exerciseHandler.GetLog)
	}
}
