package chi

import (
	"bytes"
	"fmt"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/homepage/internal/domain"
	"github.com/kailas-cloud/homepage/internal/domain/page"
	logpkg "github.com/kailas-cloud/homepage/internal/logger"
	"github.com/kailas-cloud/homepage/internal/metrics"
	healthuc "github.com/kailas-cloud/homepage/internal/usecase/health"
	homeuc "github.com/kailas-cloud/homepage/internal/usecase/home"
	"github.com/kailas-cloud/homepage/internal/view"
)

// HomeParams defines query parameters for the home page routes.
type HomeParams struct {
	// Lang selects the page locale (en, zh). Defaults to the configured locale.
	Lang *string `form:"lang,omitempty" json:"lang,omitempty"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Server serves the console home page and its JSON document tree.
type Server struct {
	home          *homeuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP server.
func NewServer(home *homeuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		home:   home,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnsupportedLocale, http.StatusBadRequest, ErrorCodeUnsupportedLocale),
	}
	return s
}

// Routes mounts the page routes plus /health and /metrics.
func (s *Server) Routes(r gochi.Router, apiKeys []string) {
	s.PageRoutes(r, apiKeys)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// PageRoutes mounts only the page itself and its JSON document. apiKeys guard /api/* only.
func (s *Server) PageRoutes(r gochi.Router, apiKeys []string) {
	r.Get("/", s.GetHome)
	r.Route("/api", func(r gochi.Router) {
		r.Use(BearerAuthMiddleware(apiKeys))
		r.Get("/home", s.GetHomeDocument)
	})
}

// GetHome handles GET /. Renders the page as HTML.
func (s *Server) GetHome(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.render(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := view.HTML(&buf, doc); err != nil {
		s.handleDomainError(w, err)
		return
	}
	metrics.RecordRender(doc.Lang, string(view.FormatHTML))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// GetHomeDocument handles GET /api/home. Returns the document tree as JSON.
func (s *Server) GetHomeDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.render(w, r)
	if !ok {
		return
	}
	metrics.RecordRender(doc.Lang, string(view.FormatJSON))
	writeJSON(w, http.StatusOK, view.FromPage(doc))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// render binds query params and renders the page. On failure the error
// response is already written.
func (s *Server) render(w http.ResponseWriter, r *http.Request) (page.Document, bool) {
	var params HomeParams
	if err := runtime.BindQueryParameter("form", true, false, "lang", r.URL.Query(), &params.Lang); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest,
			fmt.Sprintf("Invalid format for parameter lang: %s", err))
		return page.Document{}, false
	}

	if params.Lang == nil {
		return s.home.Home(), true
	}

	locale, err := homeuc.ParseLocale(*params.Lang)
	if err != nil {
		s.handleDomainError(w, err)
		return page.Document{}, false
	}
	doc, err := s.home.Render(locale)
	if err != nil {
		s.handleDomainError(w, err)
		return page.Document{}, false
	}

	logpkg.FromContext(r.Context()).Debug("page rendered", zap.String("locale", doc.Lang))
	return doc, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
