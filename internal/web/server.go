package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	ListenAddr     string
	ApiToken       string
	AllowedOrigins []string
}

type Server struct {
	cfg    ServerConfig
	engine *gin.Engine
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ll := s.getLogger("Run")
	srv := &http.Server{Addr: s.cfg.ListenAddr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		ll.Warnf("admin api listening on %s", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("admin api stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.WebModule).WithField("func", fmt.Sprintf("%T.%s", s, fn))
}

func NewServer(cfg ServerConfig, orch batch.IOrchestrator) *Server {
	g := gin.New()
	g.Use(gin.Recovery(), errorMiddleware())
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AddAllowHeaders("Authorization")
		g.Use(cors.New(corsCfg))
	}
	RegisterRoutes(g, orch, cfg.ApiToken)
	return &Server{cfg: cfg, engine: g}
}
