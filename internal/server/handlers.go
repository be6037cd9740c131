package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/morgan/talent-directory/internal/diffing"
	"github.com/morgan/talent-directory/internal/intake"
	"github.com/morgan/talent-directory/internal/moderation"
	"github.com/morgan/talent-directory/internal/schemas"
	"github.com/morgan/talent-directory/internal/search"
)

var validate = validator.New()

// IntakeRequest is the extractor payload, plus the optional id of an
// existing person to diff against.
type IntakeRequest struct {
	ID string `json:"id,omitempty"`
	intake.ExtractedProfile
}

// IntakeResponse is the reviewable outcome of one intake run. Diff is only
// present when the request named an existing record.
type IntakeResponse struct {
	Prepared      intake.PreparedProfile `json:"prepared"`
	Moderation    moderation.Report      `json:"moderation"`
	Normalization intake.Normalization   `json:"normalization"`
	Diff          *diffing.Result        `json:"diff,omitempty"`
}

// handleIntake runs the candidate content pipeline over one extracted
// profile.
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Schema check first: the extractor output is loosely typed and the
	// decode below would silently mask shape problems.
	if err := schemas.ValidateExtractedProfile(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req IntakeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result := s.pipeline.Run(req.ExtractedProfile)

	resp := IntakeResponse{
		Prepared:      result.Prepared,
		Moderation:    result.Moderation,
		Normalization: result.Normalization,
	}

	if req.ID != "" {
		personID, err := uuid.Parse(req.ID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid id format")
			return
		}
		existing, err := s.records.GetPersonRecord(r.Context(), personID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if existing == nil {
			existing = map[string]any{}
		}
		diff := diffing.Diff(existing, result.Prepared.Flat())
		resp.Diff = &diff
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// searchRequest is the bound and validated form of the search query string.
type searchRequest struct {
	Q       string   `validate:"max=500"`
	Type    string   `validate:"required,oneof=people projects all"`
	Skills  []string `validate:"dive,max=100"`
	Sectors []string `validate:"dive,max=100"`
	Open    *bool
	Limit   int
}

// handleSearch answers faceted hybrid search requests.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	req := searchRequest{
		Q:       params.Get("q"),
		Type:    params.Get("type"),
		Skills:  splitFacet(params["skills"]),
		Sectors: splitFacet(params["sectors"]),
	}
	if req.Type == "" {
		req.Type = "all"
	}

	if raw := params.Get("open"); raw != "" {
		open, err := strconv.ParseBool(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid 'open' value: "+raw)
			return
		}
		req.Open = &open
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid 'limit' value: "+raw)
			return
		}
		req.Limit = limit
	}

	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid search request: "+err.Error())
		return
	}

	query := search.Query{
		Text: req.Q,
		Facets: search.Facets{
			Skills:     req.Skills,
			Sectors:    req.Sectors,
			OpenToWork: req.Open,
		},
		Limit: req.Limit,
	}
	switch req.Type {
	case "people":
		query.Kinds = []search.Kind{search.KindPerson}
	case "projects":
		query.Kinds = []search.Kind{search.KindProject}
	case "all":
		query.Kinds = []search.Kind{search.KindPerson, search.KindProject}
	}

	results, err := s.engine.Search(r.Context(), query)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Search failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// splitFacet flattens repeated and comma-separated facet params into one
// trimmed list.
func splitFacet(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
