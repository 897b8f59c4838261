package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-pto/internal/middleware"
	suggestionHTTP "smart-pto/internal/suggestion/delivery/http"
	suggestionUC "smart-pto/internal/suggestion/usecase"
)

// setupSuggestionDomain registers /api/v1/gmail/*. Routes stay registered
// without a mail provider and answer 503.
func (srv HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := suggestionUC.New(srv.l, srv.mailRepo, srv.llm, srv.parser, srv.analyzerConfig)
	h := suggestionHTTP.New(srv.l, uc)
	suggestionHTTP.RegisterRoutes(api, h, mw)

	if srv.mailRepo == nil {
		srv.l.Warnf(ctx, "Mail provider not configured, /api/v1/gmail routes will return 503")
	} else {
		srv.l.Infof(ctx, "Suggestion domain registered (LLM: %t)", srv.llm != nil)
	}
	return nil
}
