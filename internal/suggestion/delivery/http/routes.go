package http

import (
	"github.com/gin-gonic/gin"

	"smart-pto/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Analyze is rate limited per client IP since it may call the LLM.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	gmail := rg.Group("/gmail")
	{
		gmail.GET("/holiday-suggestions", h.HolidaySuggestions)
		gmail.GET("/analyze", mw.RateLimit(), h.Analyze)
	}
}
