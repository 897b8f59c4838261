package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	pto := rg.Group("/pto")
	{
		pto.GET("/balance", h.Balance)
		pto.GET("/recommend", h.Recommend)
		pto.GET("/recommend/ics", h.ExportICS)
	}
}
