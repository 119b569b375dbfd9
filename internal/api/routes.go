package api

import (
	"net/http"

	"pulsefit/fitness-app/internal/appdate"
	"pulsefit/fitness-app/internal/planner"
	"pulsefit/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all HTTP endpoints onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	planService planner.Service,
	sessionService service.SessionService,
	dateContext *appdate.Context,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService, authService)
	sessionHandler := NewSessionHandler(sessionService, authService, dateContext.Current)
	dateHandler := NewDateHandler(dateContext)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/plans", planHandler.GeneratePlan(dateContext.Current))

		protected.GET("/sessions/today", sessionHandler.TodaySession)
		protected.GET("/sessions", sessionHandler.ListSessions)
		protected.POST("/timeline/:entryId/complete", sessionHandler.CompleteExercise)

		protected.GET("/profile/targets", sessionHandler.DietTargets)

		protected.GET("/date", dateHandler.CurrentDate)
		protected.PUT("/date", dateHandler.SetDate)
	}
}
