package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitegen-backend/pkg/api"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionsRoundTripThroughAPI(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<!DOCTYPE html><html></html>"}}
	router, _ := setupRouter(t, generator)
	sessionID := uuid.NewString()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, generateRequest(sessionID, "make a landing page", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/versions", nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var versions []api.VersionSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&versions))
	require.Len(t, versions, 1)
	assert.Equal(t, "make a landing page", versions[0].Prompt)

	req = withSession(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/versions/%d", versions[0].ID), nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail api.VersionDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, "<!DOCTYPE html><html></html>", detail.HTMLContent)
	assert.Equal(t, "make a landing page", detail.Prompt)
}

func TestVersionBelongsToOtherSession(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<html></html>"}}
	router, _ := setupRouter(t, generator)
	owner := uuid.NewString()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, generateRequest(owner, "make a landing page", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	var versions []api.VersionSummary
	req := withSession(httptest.NewRequest(http.MethodGet, "/api/versions", nil), owner)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&versions))
	require.Len(t, versions, 1)

	// A different session never sees the content.
	intruder := uuid.NewString()
	req = withSession(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/versions/%d", versions[0].ID), nil), intruder)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html>")
}

func TestGetVersionNotFoundAndBadID(t *testing.T) {
	router, _ := setupRouter(t, &scriptedGenerator{})
	sessionID := uuid.NewString()

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/versions/9999", nil), sessionID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = withSession(httptest.NewRequest(http.MethodGet, "/api/versions/abc", nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVersionListLimit(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<html></html>"}}
	router, _ := setupRouter(t, generator)
	sessionID := uuid.NewString()

	for _, prompt := range []string{"one", "two", "three"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, generateRequest(sessionID, prompt, ""))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/versions?limit=2", nil), sessionID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var versions []api.VersionSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&versions))
	require.Len(t, versions, 2)
	assert.Equal(t, "three", versions[0].Prompt)
}

func TestSessionListingAndDetail(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<html></html>"}}
	router, _ := setupRouter(t, generator)
	sessionID := uuid.NewString()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, generateRequest(sessionID, "make a landing page", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/sessions", nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []api.SessionSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, sessionID, sessions[0].ID)
	assert.Equal(t, 2, sessions[0].MessageCount)
	assert.Equal(t, 1, sessions[0].VersionCount)

	req = withSession(httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail api.SessionDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, sessionID, detail.ID)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, "user", detail.Messages[0].Role)
	assert.Equal(t, "assistant", detail.Messages[1].Role)
	require.Len(t, detail.Versions, 1)
	assert.Equal(t, "make a landing page", detail.Versions[0].Prompt)
}

func TestSessionDetailNotFound(t *testing.T) {
	router, _ := setupRouter(t, &scriptedGenerator{})

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/sessions/"+uuid.NewString(), nil), uuid.NewString())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwitchSession(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<html></html>"}}
	router, _ := setupRouter(t, generator)
	target := uuid.NewString()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, generateRequest(target, "make a landing page", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	caller := uuid.NewString()
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/sessions/"+target+"/switch", nil), caller)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SwitchSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, target, resp.SessionID)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, target, cookies[len(cookies)-1].Value)
}

func TestSwitchUnknownSession(t *testing.T) {
	router, _ := setupRouter(t, &scriptedGenerator{})

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/sessions/"+uuid.NewString()+"/switch", nil), uuid.NewString())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenameSession(t *testing.T) {
	generator := &scriptedGenerator{fragments: []string{"<html></html>"}}
	router, _ := setupRouter(t, generator)
	sessionID := uuid.NewString()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, generateRequest(sessionID, "make a landing page", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := json.Marshal(api.RenameSessionRequest{Title: "Landing Page"})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/rename", bytes.NewReader(body)), sessionID)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = withSession(httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID, nil), sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var detail api.SessionDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	assert.Equal(t, "Landing Page", detail.Title)
}

func TestRenameUnknownSession(t *testing.T) {
	router, _ := setupRouter(t, &scriptedGenerator{})

	body, _ := json.Marshal(api.RenameSessionRequest{Title: "nope"})
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/sessions/"+uuid.NewString()+"/rename", bytes.NewReader(body)), uuid.NewString())
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
