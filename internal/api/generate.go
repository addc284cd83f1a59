package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sitegen-backend/internal/chat"
	"sitegen-backend/internal/llm"
	"sitegen-backend/pkg/api"
)

const titleTimeout = 15 * time.Second

// Generate streams HTML fragments from the LLM straight to the response
// body as they arrive. On clean completion the exchange is appended to
// the session's history and the full document saved as a new version.
// A mid-stream provider failure yields a single inline error comment
// instead; nothing is persisted for that attempt.
func (s *SiteService) Generate(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		http.Error(w, "LLM not initialized. Check API key and dependencies.", http.StatusInternalServerError)
		return
	}

	sessionID := SessionID(r.Context())
	if sessionID == "" {
		http.Error(w, "Session not found.", http.StatusBadRequest)
		return
	}

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "unable to parse request body", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		http.Error(w, "Prompt is required.", http.StatusBadRequest)
		return
	}

	history, err := chat.LoadHistory(s.db, sessionID)
	if err != nil {
		slog.Error("error loading chat history", "session_id", sessionID, "error", err)
		http.Error(w, "error loading chat history", http.StatusInternalServerError)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("response writer does not support flushing")
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	fullPrompt := llm.BuildPrompt(req.Prompt, req.Code)

	stream := s.generator.Stream(r.Context(), llm.GenerateRequest{
		SystemPrompt: llm.SystemPrompt,
		History:      history,
		Prompt:       fullPrompt,
	})

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	var full strings.Builder
	for fragment, err := range stream {
		if err != nil {
			// Headers are already out, so the status stays 200 and the
			// error travels inline. The partial document is discarded.
			slog.Error("error during generation", "session_id", sessionID, "error", err)
			fmt.Fprintf(w, "/* Error: %s */", err)
			flusher.Flush()
			return
		}

		if _, err := w.Write([]byte(fragment)); err != nil {
			// Client went away; stop producing and persist nothing.
			return
		}
		flusher.Flush()
		full.WriteString(fragment)
	}

	if r.Context().Err() != nil {
		return
	}

	response := full.String()

	if err := chat.AppendTurns(s.db, sessionID, chat.UserTurn(fullPrompt), chat.AssistantTurn(response)); err != nil {
		slog.Error("error saving chat history", "session_id", sessionID, "error", err)
		return
	}
	if _, err := chat.SaveVersion(s.db, sessionID, req.Prompt, response); err != nil {
		slog.Error("error saving site version", "session_id", sessionID, "error", err)
	}

	if len(history) == 0 && s.titler != nil {
		go s.titleSession(sessionID, req.Prompt)
	}
}

// titleSession names a session after its first prompt. Best effort, a
// failed or slow title call never affects the generation itself.
func (s *SiteService) titleSession(sessionID, prompt string) {
	ctx, cancel := context.WithTimeout(context.Background(), titleTimeout)
	defer cancel()

	title, err := s.titler.Title(ctx, prompt)
	if err != nil {
		slog.Warn("could not generate session title", "session_id", sessionID, "error", err)
		return
	}

	if err := chat.RenameSession(s.db, sessionID, title); err != nil {
		slog.Warn("could not save session title", "session_id", sessionID, "error", err)
	}
}
