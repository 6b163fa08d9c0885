package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/store"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/vision"
)

// Server exposes the donation repository, the analysis store and the
// reservation tracker as a JSON API. User identity arrives as the opaque
// X-User-ID header set by the hosting auth layer; the server never parses
// or validates it beyond requiring presence.
type Server struct {
	donations    *store.DonationStore
	analyses     *store.AnalysisStore
	reservations *store.ReservationStore
	analyzer     vision.Analyzer
	mux          *http.ServeMux
	logger       *slog.Logger
}

func NewServer(
	donations *store.DonationStore,
	analyses *store.AnalysisStore,
	reservations *store.ReservationStore,
	analyzer vision.Analyzer,
	logger *slog.Logger,
) *Server {
	s := &Server{
		donations:    donations,
		analyses:     analyses,
		reservations: reservations,
		analyzer:     analyzer,
		mux:          http.NewServeMux(),
		logger:       logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /donations", s.handleListDonations)
	s.mux.HandleFunc("POST /donations", s.handleCreateDonation)
	s.mux.HandleFunc("GET /donations/{id}", s.handleGetDonation)
	s.mux.HandleFunc("PUT /donations/{id}", s.handleUpdateDonation)
	s.mux.HandleFunc("DELETE /donations/{id}", s.handleDeleteDonation)

	s.mux.HandleFunc("POST /analyses", s.handleAnalyzePhoto)
	s.mux.HandleFunc("GET /analyses", s.handleListAnalyses)
	s.mux.HandleFunc("DELETE /analyses", s.handleClearAnalyses)

	s.mux.HandleFunc("POST /reservations", s.handleAddReservation)
	s.mux.HandleFunc("GET /reservations", s.handleViewReservations)
}

// Handler returns the routing mux wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.mux)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// statusRecorder wraps http.ResponseWriter to capture the written status.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// userID extracts the authenticated identity supplied by the auth layer.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
