package http

import (
	"github.com/gin-gonic/gin"
)

// processBalanceReq binds and validates the balance query parameters.
func (h *handler) processBalanceReq(c *gin.Context) (balanceReq, error) {
	var req balanceReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRecommendReq binds and validates the recommend query parameters.
func (h *handler) processRecommendReq(c *gin.Context) (recommendReq, error) {
	var req recommendReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processICSReq binds the ICS query parameters and parses the window dates.
func (h *handler) processICSReq(c *gin.Context) (icsReq, error) {
	var req icsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
