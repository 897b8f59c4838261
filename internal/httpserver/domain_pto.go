package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ptoHTTP "smart-pto/internal/pto/delivery/http"
	ptoUC "smart-pto/internal/pto/usecase"
)

// setupPTODomain registers /api/v1/pto/*.
func (srv HTTPServer) setupPTODomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := ptoUC.New(srv.l, srv.ptoRepo, srv.llm, srv.location())
	h := ptoHTTP.New(srv.l, uc)
	ptoHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "PTO domain registered (AI window pick: %t)", srv.llm != nil)
	return nil
}
