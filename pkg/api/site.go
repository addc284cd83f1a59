package api

import "time"

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Code   string `json:"code,omitempty"`
}

type VersionSummary struct {
	ID        uint      `json:"id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

type VersionDetail struct {
	ID          uint   `json:"id"`
	HTMLContent string `json:"html_content"`
	Prompt      string `json:"prompt"`
}

type SessionSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	VersionCount int       `json:"version_count"`
}

type SessionDetail struct {
	SessionSummary
	Versions []VersionSummary `json:"versions"`
	Messages []Message        `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SwitchSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type RenameSessionRequest struct {
	Title string `json:"title"`
}
