package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitegen-backend/internal/llm"
)

type SiteService struct {
	db        *gorm.DB
	generator llm.Generator
	titler    *llm.Titler
}

// NewSiteService wires the HTTP surface. generator may be nil when the
// LLM client failed to initialize; every generation request then gets a
// fixed 500 while the rest of the API keeps working. titler is optional.
func NewSiteService(db *gorm.DB, generator llm.Generator, titler *llm.Titler) *SiteService {
	return &SiteService{
		db:        db,
		generator: generator,
		titler:    titler,
	}
}

func (s *SiteService) AddRoutes(r chi.Router) {
	r.Post("/generate", s.Generate)
	r.Post("/new_chat", s.NewChat)
	r.Get("/health", RestHandler(s.Health))

	r.Route("/api", func(r chi.Router) {
		r.Get("/versions", RestHandler(s.GetVersions))
		r.Get("/versions/{version_id}", RestHandler(s.GetVersion))
		r.Get("/sessions", RestHandler(s.GetSessions))
		r.Get("/sessions/{session_id}", RestHandler(s.GetSessionDetail))
		r.Post("/sessions/{session_id}/switch", s.SwitchSession)
		r.Post("/sessions/{session_id}/rename", RestHandler(s.RenameSession))
	})
}

// NewChat discards the current session id and issues a fresh one.
func (s *SiteService) NewChat(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()
	setSessionCookie(w, sessionID)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck
}

func (s *SiteService) Health(r *http.Request) (any, error) {
	return map[string]string{"status": "ok"}, nil
}
