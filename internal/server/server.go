package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/internal/app"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg    config.ServerConfig
	engine *gin.Engine
	log    *zap.Logger
}

// New builds the gin engine with every route loaded. The gin mode must be
// set before the engine is created.
func New(cfg config.ServerConfig, svc *app.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	g := gin.New()
	g.Use(gin.Recovery(), requestLogger(log))
	NewRouter(NewHandler(svc)).Load(g)

	return &Server{cfg: cfg, engine: g, log: log}
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server started", zap.String("addr", s.cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.log.Error("server start failed", zap.String("addr", s.cfg.Addr), zap.Error(err))
		return err
	case <-ctx.Done():
	}

	s.log.Info("server shutdown")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		s.log.Error("server shutdown", zap.Error(err))
		return err
	}
	s.log.Info("server stopped", zap.String("addr", s.cfg.Addr))
	return nil
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
