package routes

import (
	"mototrackr/internal/adapter/http/handlers"
	"mototrackr/internal/adapter/http/middleware"
	"mototrackr/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs       = "/jobs"
	PathTrack      = "/track"
	PathAuth       = "/auth"
	PathSpareParts = "/spare-parts"
)

// Public surface: customer lookup and mechanic login. No token required.
func addPublicRoutes(rg *gin.RouterGroup, trackHandler *handlers.TrackHandler, authHandler *handlers.AuthHandler) {
	track := rg.Group(PathTrack)
	{
		track.GET("", trackHandler.Track)
	}

	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/token", authHandler.Token)
	}
}

// Mechanic surface: everything that mutates a job card or exposes customer
// contact data sits behind the bearer token.
func addMechanicRoutes(
	rg *gin.RouterGroup,
	jwt *auth.JWT,
	jobHandler *handlers.JobHandler,
	notificationHandler *handlers.NotificationHandler,
	sparePartsHandler *handlers.SparePartsHandler,
	trackHandler *handlers.TrackHandler,
) {
	protected := rg.Group("", middleware.RequireAuth(jwt))

	jobs := protected.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id/status", jobHandler.UpdateStatus)
		jobs.POST("/:id/costs", jobHandler.AddCostItem)
		jobs.POST("/:id/logs", jobHandler.AddLogEntry)
		jobs.GET("/:id/notifications", notificationHandler.ListByJob)
	}

	protected.GET(PathTrack+"/history", trackHandler.History)

	spareParts := protected.Group(PathSpareParts)
	{
		spareParts.GET("", sparePartsHandler.ListParts)
	}
}
