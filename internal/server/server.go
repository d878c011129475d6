// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the research pipeline over HTTP: a synchronous
// research endpoint returning the canonical report, and report retrieval
// endpoints serving stored runs as JSON or rendered documents.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/market-scout/internal/render"
	"github.com/pdiddy/market-scout/internal/report"
	"github.com/pdiddy/market-scout/pkg/types"
)

const defaultMaxQueryLen = 200

// Researcher runs one research pass. The pipeline Runner satisfies this;
// tests supply fakes.
type Researcher interface {
	Run(ctx context.Context, query string) (types.Report, error)
}

// Server handles the HTTP surface.
type Server struct {
	runner Researcher
	store  *report.Store
	cfg    types.ServerConfig
	export string
	log    *zap.Logger
}

// New builds a Server.
func New(runner Researcher, store *report.Store, cfg types.ServerConfig, exportPath string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{runner: runner, store: store, cfg: cfg, export: exportPath, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/research", s.handleResearch)
	r.GET("/report", s.handleLatest)
	r.GET("/report/download", s.handleDownload)
	r.GET("/reports/:id", s.handleGet)

	return r
}

// researchRequest is the query intake body.
type researchRequest struct {
	Query string `json:"query"`
}

func (s *Server) maxQueryLen() int {
	if s.cfg.MaxQueryLen > 0 {
		return s.cfg.MaxQueryLen
	}
	return defaultMaxQueryLen
}

// handleResearch runs the full pipeline synchronously and returns the
// report. The completed report is persisted before the response is sent.
func (s *Server) handleResearch(c *gin.Context) {
	var req researchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON with a query field"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
		return
	}
	if max := s.maxQueryLen(); len(query) > max {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("query exceeds %d characters", max)})
		return
	}

	s.log.Info("research started", zap.String("query", query))

	rep, err := s.runner.Run(c.Request.Context(), query)
	if err != nil {
		s.log.Error("research failed", zap.String("query", query), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	id, err := s.store.Save(rep, query)
	if err != nil {
		s.log.Error("saving report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persisting report failed"})
		return
	}
	if s.export != "" {
		if rec, err := s.store.Get(id); err == nil {
			if err := report.Export(rec, s.export); err != nil {
				s.log.Warn("export failed", zap.String("path", s.export), zap.Error(err))
			}
		}
	}

	s.log.Info("research completed", zap.String("query", query), zap.String("report_id", id))

	c.Header("X-Report-ID", id)
	c.JSON(http.StatusOK, rep)
}

// handleLatest returns the most recently persisted report as JSON.
func (s *Server) handleLatest(c *gin.Context) {
	rec, err := s.store.Latest()
	if err != nil {
		s.replyStoreError(c, err)
		return
	}
	c.Header("X-Report-ID", rec.ID)
	c.Data(http.StatusOK, "application/json; charset=utf-8", rec.Body)
}

// handleGet returns one stored report by run identifier.
func (s *Server) handleGet(c *gin.Context) {
	rec, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.replyStoreError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", rec.Body)
}

// handleDownload renders the latest report and streams it as an attachment.
// The format query parameter selects pdf (default) or markdown.
func (s *Server) handleDownload(c *gin.Context) {
	rec, err := s.store.Latest()
	if err != nil {
		s.replyStoreError(c, err)
		return
	}

	format := types.RenderFormat(c.DefaultQuery("format", string(types.RenderPDF)))
	renderer, err := render.New(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Render to memory first: a layout failure must not leak a partial body.
	var buf strings.Builder
	if err := renderer.Render(rec.Body, &buf); err != nil {
		s.log.Error("rendering report failed", zap.String("report_id", rec.ID), zap.Error(err))
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	rep, err := rec.Report()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	filename := render.Filename(render.CompanyName(rep.Overview), renderer.Extension())

	contentType := "application/pdf"
	if format == types.RenderMarkdown {
		contentType = "text/markdown; charset=utf-8"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, []byte(buf.String()))
}

func (s *Server) replyStoreError(c *gin.Context, err error) {
	if errors.Is(err, report.ErrNoReport) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report has been generated yet"})
		return
	}
	s.log.Error("report store failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "report store failed"})
}

// statusFor maps the error taxonomy to HTTP statuses: caller mistakes and
// malformed reports are 4xx, AI collaborator failures 502, the rest 500.
func statusFor(err error) int {
	var verr *types.ValidationError
	var merr *types.MissingFieldError
	var serr *types.SummarizationError
	var gerr *types.GenerationError
	switch {
	case errors.As(err, &verr), errors.As(err, &merr):
		return http.StatusBadRequest
	case errors.As(err, &serr), errors.As(err, &gerr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
