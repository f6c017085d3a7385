package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/clauses"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/drafter"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/store"
)

type Server struct {
	router   *chi.Mux
	port     int
	analyzer *analyzer.Analyzer
	drafter  *drafter.Drafter
	clauses  clauses.Set
	store    *store.Store
	mode     llm.Mode
	model    string
}

// NewServer wires the HTTP surface. db may be nil when the service runs
// without persistence; the draft-lookup endpoint then answers 503.
func NewServer(port int, apiToken string, mode llm.Mode, model string, an *analyzer.Analyzer, dr *drafter.Drafter, cl clauses.Set, db *store.Store) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		analyzer: an,
		drafter:  dr,
		clauses:  cl,
		store:    db,
		mode:     mode,
		model:    model,
	}

	router.Get("/health", s.health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Get("/assistant/status", s.status)
		r.Post("/assistant/analyze", s.analyze)
		r.Post("/assistant/draft", s.draft)
		r.Get("/emails/{id}/draft", s.getDraft)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests without the configured bearer token.
// An empty configured token disables the check (local development).
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type emailRequest struct {
	EmailText string `json:"email_text"`
}

type analyzeResponse struct {
	Analysis *analyzer.Analysis `json:"analysis"`
	Mode     string             `json:"mode"`
}

type draftResponse struct {
	Analysis *analyzer.Analysis `json:"analysis"`
	Reply    string             `json:"reply"`
	Mode     string             `json:"mode"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "legal-email-assistant",
		"mode":    string(s.mode),
		"model":   s.model,
	})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}
	if req.EmailText == "" {
		http.Error(w, `{"error":"email_text is required"}`, http.StatusBadRequest)
		return
	}

	a := s.analyzer.Analyze(r.Context(), req.EmailText)
	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: a, Mode: string(s.mode)})
}

func (s *Server) draft(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}
	if req.EmailText == "" {
		http.Error(w, `{"error":"email_text is required"}`, http.StatusBadRequest)
		return
	}

	a := s.analyzer.Analyze(r.Context(), req.EmailText)
	reply := s.drafter.Draft(r.Context(), req.EmailText, a, s.clauses)
	writeJSON(w, http.StatusOK, draftResponse{Analysis: a, Reply: reply, Mode: string(s.mode)})
}

func (s *Server) getDraft(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, `{"error":"persistence not configured"}`, http.StatusServiceUnavailable)
		return
	}

	emailID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"invalid email id"}`, http.StatusBadRequest)
		return
	}

	d, err := s.store.GetDraftByEmail(r.Context(), emailID)
	if err != nil {
		http.Error(w, `{"error":"draft not found"}`, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"draft_id": d.ID.String(),
		"email_id": d.EmailID.String(),
		"reply":    d.Reply,
		"mode":     d.Mode,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
