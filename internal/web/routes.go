package web

import (
	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the admin API on /api.
func RegisterRoutes(r *gin.Engine, orch batch.IOrchestrator, apiToken string) {
	api := r.Group("/api")
	auth := tokenAuthMiddleware(apiToken)
	for _, h := range []*ApiHandler{
		NewApiHandler(&RunsApiHandler{Orchestrator: orch}, "runs"),
		NewApiHandler(&RunsCancelApiHandler{Orchestrator: orch}, "runs/cancel"),
		NewApiHandler(&CacheClearApiHandler{Orchestrator: orch}, "cache/clear"),
	} {
		h.RegisterRoutes(api, auth)
	}
}
