package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"sitegen-backend/internal/chat"
	"sitegen-backend/internal/database"
	"sitegen-backend/pkg/api"
)

func (s *SiteService) GetSessions(r *http.Request) (any, error) {
	sessions, err := chat.ListSessions(s.db)
	if err != nil {
		return nil, err
	}

	summaries := make([]api.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summary, err := s.sessionSummary(session)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *SiteService) GetSessionDetail(r *http.Request) (any, error) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := chat.GetSession(s.db, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, CodedErrorf(http.StatusNotFound, "Session not found")
	}
	if err != nil {
		return nil, err
	}

	summary, err := s.sessionSummary(session)
	if err != nil {
		return nil, err
	}

	versions, err := chat.ListVersions(s.db, sessionID)
	if err != nil {
		return nil, err
	}
	versionSummaries := make([]api.VersionSummary, 0, len(versions))
	for _, v := range versions {
		versionSummaries = append(versionSummaries, api.VersionSummary{
			ID:        v.ID,
			Prompt:    v.Prompt,
			CreatedAt: v.CreatedAt,
		})
	}

	turns := chat.DecodeTurns(session.Messages)
	messages := make([]api.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, api.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	return api.SessionDetail{
		SessionSummary: summary,
		Versions:       versionSummaries,
		Messages:       messages,
	}, nil
}

// SwitchSession points the caller's cookie at an existing session. Not a
// RestHandler because it has to rewrite the cookie.
func (s *SiteService) SwitchSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	exists, err := chat.SessionExists(s.db, sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	setSessionCookie(w, sessionID)

	WriteJsonResponse(w, api.SwitchSessionResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Successfully switched to session",
	})
}

func (s *SiteService) RenameSession(r *http.Request) (any, error) {
	sessionID := chi.URLParam(r, "session_id")

	req, err := ParseRequest[api.RenameSessionRequest](r)
	if err != nil {
		return nil, err
	}

	exists, err := chat.SessionExists(s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, CodedErrorf(http.StatusNotFound, "Session not found")
	}

	if err := chat.RenameSession(s.db, sessionID, req.Title); err != nil {
		return nil, err
	}

	return nil, nil
}

func (s *SiteService) sessionSummary(session database.ChatHistory) (api.SessionSummary, error) {
	versionCount, err := chat.CountVersions(s.db, session.SessionID)
	if err != nil {
		return api.SessionSummary{}, err
	}

	return api.SessionSummary{
		ID:           session.SessionID,
		Title:        session.Title,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
		MessageCount: len(chat.DecodeTurns(session.Messages)),
		VersionCount: int(versionCount),
	}, nil
}
