package routes

import (
	"restauplus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAnalytics = "/restaurants/:restaurant_id/analytics"

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	analytics := rg.Group(PathAnalytics)
	{
		analytics.GET("/customers", analyticsHandler.GetCustomerProfiles)
		analytics.GET("/prep-time", analyticsHandler.GetPrepTime)
		analytics.GET("/leaderboard", analyticsHandler.GetLeaderboard)
		analytics.GET("/calendar", analyticsHandler.GetCalendar)
	}
}
