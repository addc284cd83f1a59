package api

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"sitegen-backend/internal/chat"
	"sitegen-backend/pkg/api"
)

type listVersionsParams struct {
	Limit int `schema:"limit"`
}

func (s *SiteService) GetVersions(r *http.Request) (any, error) {
	sessionID := SessionID(r.Context())
	if sessionID == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Session not found")
	}

	params, err := ParseRequestQueryParams[listVersionsParams](r)
	if err != nil {
		return nil, err
	}

	versions, err := chat.ListVersions(s.db, sessionID)
	if err != nil {
		return nil, err
	}
	if params.Limit > 0 && len(versions) > params.Limit {
		versions = versions[:params.Limit]
	}

	summaries := make([]api.VersionSummary, 0, len(versions))
	for _, v := range versions {
		summaries = append(summaries, api.VersionSummary{
			ID:        v.ID,
			Prompt:    v.Prompt,
			CreatedAt: v.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *SiteService) GetVersion(r *http.Request) (any, error) {
	sessionID := SessionID(r.Context())
	if sessionID == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "Session not found")
	}

	versionID, err := URLParamUint(r, "version_id")
	if err != nil {
		return nil, err
	}

	version, err := chat.GetVersion(s.db, versionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, CodedErrorf(http.StatusNotFound, "version %d not found", versionID)
	}
	if err != nil {
		return nil, err
	}

	// Versions are only visible to the session that produced them.
	if version.SessionID != sessionID {
		return nil, CodedErrorf(http.StatusForbidden, "Unauthorized")
	}

	return api.VersionDetail{
		ID:          version.ID,
		HTMLContent: version.HTMLContent,
		Prompt:      version.Prompt,
	}, nil
}
