package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RunsApiHandler struct {
	Orchestrator batch.IOrchestrator
}
type RunsCancelApiHandler struct {
	Orchestrator batch.IOrchestrator
}
type CacheClearApiHandler struct {
	Orchestrator batch.IOrchestrator
}

var _ IGetApiHandler = (*RunsApiHandler)(nil)
var _ IPostApiHandler = (*RunsCancelApiHandler)(nil)
var _ IPostApiHandler = (*CacheClearApiHandler)(nil)

func (h *RunsApiHandler) Get(g *gin.Context) {
	runs := h.Orchestrator.ActiveRuns()
	res := RunsGetResType{Runs: make([]RunType, 0, len(runs))}
	for _, r := range runs {
		res.Runs = append(res.Runs, RunType{
			UserID:            r.UserID,
			Total:             r.Total,
			Current:           r.Current,
			Success:           r.Success,
			CancelRequested:   r.CancelRequested,
			ProgressMessageID: r.ProgressMessageID,
		})
	}
	g.JSON(http.StatusOK, res)
}
func (h *RunsApiHandler) AuthGet() bool {
	return true
}

// ===
func (h *RunsCancelApiHandler) Post(g *gin.Context) {
	ll := getLogger("RunsCancelApiHandler.Post")
	var req RunsCancelPostReqType
	if err := g.ShouldBindJSON(&req); err != nil {
		g.Error(NewHttpError(err, http.StatusBadRequest)) //nolint:golint,errcheck
		return
	}
	if req.All {
		rep := h.Orchestrator.CancelAll(g.Request.Context())
		ll.Infof("all runs reset: %d flagged", rep.Flagged)
		g.JSON(http.StatusOK, RunsCancelPostResType{
			Users:                rep.Users,
			Flagged:              rep.Flagged,
			ConversationsCleared: rep.ConversationsCleared,
			KeysCleared:          rep.KeysCleared,
			LocksCleared:         rep.LocksCleared,
			InflightCleared:      rep.InflightCleared,
		})
		return
	}
	if req.UserID <= 0 {
		g.Error(NewHttpError(errors.New("user_id or all is required"), http.StatusBadRequest)) //nolint:golint,errcheck
		return
	}
	res, err := h.Orchestrator.Cancel(g.Request.Context(), req.UserID)
	if err != nil {
		g.Error(NewHttpError(err, http.StatusInternalServerError)) //nolint:golint,errcheck
		return
	}
	out := RunsCancelPostResType{Result: res.String()}
	if res == batch.CancelRequested {
		out.Flagged = 1
		out.Users = []int64{req.UserID}
	}
	g.JSON(http.StatusOK, out)
}
func (h *RunsCancelApiHandler) AuthPost() bool {
	return true
}

// ===
func (h *CacheClearApiHandler) Post(g *gin.Context) {
	g.JSON(http.StatusOK, CacheClearPostResType{KeysCleared: h.Orchestrator.ClearCaches()})
}
func (h *CacheClearApiHandler) AuthPost() bool {
	return true
}

func getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.WebModule).WithField("func", fmt.Sprintf("web.%s", fn))
}
