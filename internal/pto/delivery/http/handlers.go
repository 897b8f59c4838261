package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-pto/pkg/response"
)

// Balance godoc
// @Summary     Get PTO balance
// @Description Returns the employee's accrued PTO days.
// @Tags        PTO
// @Accept      json
// @Produce     json
// @Param       employee_id query string true "Employee ID"
// @Success     200 {object} balanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Employee not found"
// @Router      /api/v1/pto/balance [GET]
func (h *handler) Balance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBalanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Balance(ctx, req.EmployeeID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Balance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBalanceResp(output))
}

// Recommend godoc
// @Summary     Recommend PTO windows
// @Description Proposes windows with low team coverage impact, optionally letting Gemini pick the best one.
// @Tags        PTO
// @Accept      json
// @Produce     json
// @Param       employee_id        query string  true  "Employee ID"
// @Param       desired_len_days   query int     false "Window length in days (1-14, default: 3)"
// @Param       horizon_days       query int     false "Search horizon in days (7-90, default: 60)"
// @Param       max_coverage_ratio query number  false "Max share of team out on any day (default: 0.3)"
// @Param       top_k              query int     false "Number of windows (default: 5)"
// @Param       use_ai             query boolean false "Let the LLM pick the best window"
// @Success     200 {object} recommendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Employee not found"
// @Router      /api/v1/pto/recommend [GET]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Recommend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecommendResp(output))
}

// ExportICS godoc
// @Summary     Download a PTO window as iCalendar
// @Description Returns an all-day VEVENT for the window, or for the first recommendation when no window is given.
// @Tags        PTO
// @Produce     text/calendar
// @Param       employee_id  query string true  "Employee ID"
// @Param       window_start query string false "YYYY-MM-DD"
// @Param       window_end   query string false "YYYY-MM-DD"
// @Success     200 {string} string "iCalendar file"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Employee not found"
// @Failure     422 {object} response.Resp "No window available"
// @Router      /api/v1/pto/recommend/ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processICSReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ExportICS(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(output.Content))
}
