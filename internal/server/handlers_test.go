package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morgan/talent-directory/internal/embedding"
	"github.com/morgan/talent-directory/internal/search"
)

type fakeRecordStore struct {
	people    []search.Person
	projects  []search.Project
	record    map[string]any
	searchErr error

	peopleCalls   int
	projectsCalls int
}

func (f *fakeRecordStore) SearchPeople(_ context.Context, _ search.CompiledQuery) ([]search.Person, error) {
	f.peopleCalls++
	return f.people, f.searchErr
}

func (f *fakeRecordStore) SearchProjects(_ context.Context, _ search.CompiledQuery) ([]search.Project, error) {
	f.projectsCalls++
	return f.projects, f.searchErr
}

func (f *fakeRecordStore) GetPersonRecord(_ context.Context, _ uuid.UUID) (map[string]any, error) {
	return f.record, nil
}

type failingGateway struct{}

func (failingGateway) Embed(context.Context, string) ([]float32, error) {
	return nil, &embedding.GatewayError{Err: errors.New("upstream auth failure")}
}

func (failingGateway) Close() error { return nil }

func newTestServer(store *fakeRecordStore, gateway embedding.Gateway) *Server {
	return newWithStore(store, gateway)
}

func TestHandleIntake(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, nil)

	body := `{"name":"Jane Doe","title":"Engineer","skills":["js","React.js","js"],"openToWork":null}`
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleIntake(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntakeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"JavaScript", "React"}, resp.Prepared.Skills)
	assert.False(t, resp.Prepared.OpenToWork)
	assert.Empty(t, resp.Moderation.Errors)
	assert.Len(t, resp.Normalization.Renamed, 3)
	assert.Nil(t, resp.Diff, "no diff without an id")
}

func TestHandleIntakeMalformedShape(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(`{"skills":"js"}`))
	rec := httptest.NewRecorder()
	s.handleIntake(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleIntakeWithDiff(t *testing.T) {
	store := &fakeRecordStore{record: map[string]any{
		"name":       "Jane Doe",
		"title":      "Junior Engineer",
		"skills":     []string{"JavaScript"},
		"openToWork": false,
	}}
	s := newTestServer(store, nil)

	body := `{"id":"` + uuid.NewString() + `","name":"Jane Doe","title":"Engineer","skills":["js","react"],"openToWork":true}`
	req := httptest.NewRequest(http.MethodPost, "/intake", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleIntake(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntakeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Diff)
	assert.Equal(t, []string{"name"}, resp.Diff.Same)
	assert.ElementsMatch(t, []string{"title", "skills", "openToWork"}, resp.Diff.Changed)
}

func TestHandleIntakeBadID(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/intake",
		strings.NewReader(`{"id":"not-a-uuid","name":"Jane"}`))
	rec := httptest.NewRecorder()
	s.handleIntake(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSearchKeyword(t *testing.T) {
	store := &fakeRecordStore{people: []search.Person{{Name: "Ada"}}}
	s := newTestServer(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/search?type=people&skills=Go,React&open=true", nil)
	rec := httptest.NewRecorder()
	s.handleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results search.Results
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results.People, 1)
	assert.Equal(t, 0.0, results.People[0].Score)
	assert.Empty(t, results.Projects)
	assert.Equal(t, 0, store.projectsCalls, "projects not queried for type=people")
}

func TestHandleSearchDefaultsToAll(t *testing.T) {
	store := &fakeRecordStore{}
	s := newTestServer(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	s.handleSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.peopleCalls)
	assert.Equal(t, 1, store.projectsCalls)
}

func TestHandleSearchInvalidParams(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, nil)

	for _, target := range []string{
		"/search?type=companies",
		"/search?open=maybe",
		"/search?limit=ten",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		s.handleSearch(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandleSearchGatewayFailure(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, failingGateway{})

	req := httptest.NewRequest(http.MethodGet, "/search?q=react+expert&type=people", nil)
	rec := httptest.NewRecorder()
	s.handleSearch(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code,
		"embedding failure must surface, not degrade to keyword mode")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&fakeRecordStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
