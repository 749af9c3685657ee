package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/audit-lab/imsaudit/pkg/usecase"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

// Server exposes the audit state query surface, the CSV import endpoint and
// the export formats over a REST API.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		uc:     uc,
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/risks", func(r chi.Router) {
			r.Get("/", s.listRisks)
			r.Post("/", s.addRisk)
			r.Get("/high-priority", s.highPriorityRisks)
			r.Delete("/{id}", s.removeRisk)
		})

		r.Route("/findings", func(r chi.Router) {
			r.Get("/", s.listFindings)
			r.Patch("/{id}/status", s.updateFindingStatus)
		})

		r.Route("/roadmap", func(r chi.Router) {
			r.Get("/", s.listRoadmap)
			r.Patch("/{index}/status", s.updateRoadmapStatus)
		})

		r.Get("/kpis", s.listKPIs)
		r.Get("/audit-plan", s.listAuditPlan)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/risks", s.riskStats)
			r.Get("/risks/by-area", s.areaBreakdowns)
			r.Get("/findings", s.findingStats)
			r.Get("/kpis", s.kpiStats)
		})

		r.Route("/import", func(r chi.Router) {
			r.Post("/{kind}", s.importCSV)
			r.Get("/template", s.importTemplate)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/state.json", s.exportState)
			r.Get("/report.json", s.exportReport)
			r.Get("/risks.csv", s.exportRisksCSV)
			r.Get("/report.txt", s.exportText)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
