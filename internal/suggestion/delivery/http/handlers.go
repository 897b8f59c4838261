package http

import (
	"github.com/gin-gonic/gin"

	"smart-pto/pkg/response"
)

// Analyze godoc
// @Summary     Suggest PTO windows from the mailbox
// @Description Scans recent holiday/travel related messages and proposes PTO windows. Uses Gemini when configured, otherwise a rule-based extractor.
// @Tags        Gmail
// @Accept      json
// @Produce     json
// @Param       max_results query int false "Messages to scan (default: 50, max: 500)"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Mail provider failure"
// @Failure     503 {object} response.Resp "Mail provider not configured"
// @Router      /api/v1/gmail/analyze [GET]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// HolidaySuggestions godoc
// @Summary     List holiday-related messages
// @Description Returns subject, sender and date of messages matching the holiday/travel mailbox query.
// @Tags        Gmail
// @Accept      json
// @Produce     json
// @Param       max_results query int false "Messages to list (default: 20, max: 500)"
// @Success     200 {object} candidatesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Mail provider failure"
// @Failure     503 {object} response.Resp "Mail provider not configured"
// @Router      /api/v1/gmail/holiday-suggestions [GET]
func (h *handler) HolidaySuggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCandidatesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListCandidates(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCandidates: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCandidatesResp(output))
}
