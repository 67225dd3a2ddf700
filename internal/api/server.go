package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/yuin/goldmark"

	"github.com/codegod100/roc-syntax-mcp/internal/config"
	"github.com/codegod100/roc-syntax-mcp/internal/syntax"
	"github.com/codegod100/roc-syntax-mcp/internal/topics"
)

// Server is the optional HTTP surface: REST mirrors of the MCP tools, a
// stats endpoint, and the MCP streamable transport mounted at /mcp.
type Server struct {
	router   chi.Router
	svc      *syntax.Service
	mcpSrv   *mcp.Server
	log      *slog.Logger
	cfg      config.Config
	requests atomic.Int64
}

// NewServer creates and configures the HTTP server.
func NewServer(svc *syntax.Service, mcpSrv *mcp.Server, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		svc:    svc,
		mcpSrv: mcpSrv,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleOverview)

	// MCP over streamable HTTP.
	r.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpSrv
	}, nil))

	// REST mirrors of the MCP tools.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}
		r.Use(s.countRequests)

		r.Get("/api/syntax", s.handleSyntax)
		r.Get("/api/search", s.handleSearch)
		r.Get("/api/topics", s.handleTopics)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleOverview serves a rendered landing page describing the tool surface.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	var md bytes.Buffer
	md.WriteString("# Roc Syntax Reference Server\n\n")
	md.WriteString("MCP tools: `get_roc_syntax`, `search_roc_syntax`, `list_roc_topics`.\n")
	md.WriteString("REST mirrors: `/api/syntax`, `/api/search?q=`, `/api/topics`, `/api/stats`.\n\n")
	md.WriteString(topics.CatalogText())

	var html bytes.Buffer
	if err := goldmark.Convert(md.Bytes(), &html); err != nil {
		jsonError(w, "render overview: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html.Bytes())
}
