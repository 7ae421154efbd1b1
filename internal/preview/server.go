// Package preview serves pages with the header pre-rendered for the requested path.
package preview

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vcrobe/navheader/console"
	"github.com/vcrobe/navheader/navconfig"
	"github.com/vcrobe/navheader/ssr"
)

// Options configures the preview server.
type Options struct {
	// StaticDir, when set, is served under /static (wasm binary, wasm_exec.js, css).
	StaticDir string
	Page      ssr.PageOptions
}

// Server renders the header for every GET path not claimed by another route.
type Server struct {
	cfg    *navconfig.Config
	opts   Options
	engine *gin.Engine
}

// New creates a preview server for cfg.
func New(cfg *navconfig.Config, opts Options) *Server {
	s := &Server{cfg: cfg, opts: opts}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if opts.StaticDir != "" {
		engine.Static("/static", opts.StaticDir)
	}
	engine.NoRoute(s.renderPage)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) renderPage(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.String(http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := c.Request.URL.Path

	var buf bytes.Buffer
	if err := ssr.WritePage(&buf, s.cfg, path, s.opts.Page); err != nil {
		console.WithFields(map[string]any{"path": path}).WithError(err).Error("Failed to render page")
		c.String(http.StatusInternalServerError, "render failed")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// RequestLogger logs every request through the console logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path += "?" + raw
		}
		status := c.Writer.Status()

		entry := console.WithFields(map[string]any{
			"ip":     c.ClientIP(),
			"method": c.Request.Method,
			"path":   path,
			"status": status,
			"took":   time.Since(start),
		})

		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request completed")
		}
	}
}
