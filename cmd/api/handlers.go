package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"linfit/internal/data"
	"linfit/internal/regression"
	"linfit/internal/render"
	"linfit/internal/session"
)

type server struct {
	engine *session.Engine
	store  *session.Store
	log    *zap.Logger
}

func newRouter(s *server, apiKey string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(s.log))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/")
	api.Use(apiKeyMiddleware(apiKey))
	api.GET("/dataset", s.handleDataset)
	api.GET("/dataset.csv", s.handleDatasetCSV)
	api.POST("/sessions", s.handleCreate)
	api.GET("/sessions/:id", s.handleGet)
	api.PUT("/sessions/:id/line", s.handleSetLine)
	api.POST("/sessions/:id/nudge", s.handleNudge)
	api.POST("/sessions/:id/reset", s.handleReset)
	api.DELETE("/sessions/:id", s.handleDelete)
	api.GET("/sessions/:id/chart.png", s.handleChart)
	api.GET("/sessions/:id/error.png", s.handleErrorBar)
	return r
}

func apiKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func accessLog(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

type lineReq struct {
	Slope     *float64 `json:"slope" binding:"required,min=-10,max=10"`
	Intercept *float64 `json:"intercept" binding:"required,min=-20,max=20"`
}

type nudgeReq struct {
	DSlope     int `json:"d_slope" binding:"min=-400,max=400"`
	DIntercept int `json:"d_intercept" binding:"min=-400,max=400"`
}

func (s *server) handleDataset(c *gin.Context) {
	ds := s.engine.Dataset()
	c.JSON(http.StatusOK, gin.H{
		"n":           ds.Len(),
		"points":      ds.Points(),
		"fingerprint": strconv.FormatUint(ds.Fingerprint(), 16),
		"best_line":   s.engine.BestLine(),
	})
}

func (s *server) handleDatasetCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := data.WriteCSV(&buf, s.engine.Dataset()); err != nil {
		s.log.Error("write dataset csv", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "csv"})
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (s *server) handleCreate(c *gin.Context) {
	id, st, err := s.store.Create()
	if errors.Is(err, session.ErrFull) {
		s.log.Warn("session limit reached", zap.Int("sessions", s.store.Len()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many sessions"})
		return
	}
	if err != nil {
		s.log.Error("create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	s.log.Debug("session created", zap.String("id", id), zap.Int("sessions", s.store.Len()))
	c.JSON(http.StatusCreated, gin.H{"id": id, "snapshot": s.engine.Recompute(st)})
}

func (s *server) handleGet(c *gin.Context) {
	st, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.engine.Recompute(st))
}

func (s *server) handleSetLine(c *gin.Context) {
	var req lineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	l := regression.Line{Slope: *req.Slope, Intercept: *req.Intercept}
	s.update(c, func(st *session.State) error { return st.Set(l) })
}

func (s *server) handleNudge(c *gin.Context) {
	var req nudgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.update(c, func(st *session.State) error { st.Nudge(req.DSlope, req.DIntercept); return nil })
}

func (s *server) handleReset(c *gin.Context) {
	s.update(c, func(st *session.State) error { st.Reset(); return nil })
}

func (s *server) handleDelete(c *gin.Context) {
	if !s.store.Delete(c.Param("id")) {
		s.fail(c, session.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *server) handleChart(c *gin.Context) {
	s.image(c, render.ChartHeight, render.Chart)
}

func (s *server) handleErrorBar(c *gin.Context) {
	s.image(c, render.BarHeight, func(snap session.Snapshot) (*plot.Plot, error) {
		return render.ErrorBar(snap, s.engine.Thresholds())
	})
}

// sweepSessions drops idle sessions every interval until ctx is done.
func (s *server) sweepSessions(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.store.Sweep(); n > 0 {
				s.log.Info("expired sessions dropped", zap.Int("dropped", n), zap.Int("sessions", s.store.Len()))
			}
		}
	}
}

func (s *server) update(c *gin.Context, fn func(*session.State) error) {
	st, err := s.store.Update(c.Param("id"), fn)
	if err != nil {
		s.fail(c, err)
		return
	}
	snap := s.engine.Recompute(st)
	s.log.Debug("recomputed",
		zap.Float64("slope", st.Line.Slope),
		zap.Float64("intercept", st.Line.Intercept),
		zap.Float64("total_error", snap.TotalError),
		zap.Stringer("label", snap.Label),
	)
	c.JSON(http.StatusOK, snap)
}

func (s *server) image(c *gin.Context, height vg.Length, build func(session.Snapshot) (*plot.Plot, error)) {
	st, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	p, err := build(s.engine.Recompute(st))
	if err == nil {
		var buf bytes.Buffer
		if err = render.WritePNG(&buf, p, render.ChartWidth, height); err == nil {
			c.Data(http.StatusOK, "image/png", buf.Bytes())
			return
		}
	}
	s.log.Error("render", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
}

func (s *server) fail(c *gin.Context, err error) {
	var invalid *session.InvalidInputError
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error(), "field": invalid.Field})
	default:
		s.log.Error("session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
