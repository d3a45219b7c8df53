package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"kingdom-tracker/internal/api"
	"kingdom-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// errorStatus maps lookup misses to 404: sql.ErrNoRows for kingdoms we
// never stored, api.ErrNotFound for ids the hub does not know either.
func errorStatus(err error, fallback int) int {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, api.ErrNotFound) {
		return http.StatusNotFound
	}
	return fallback
}

type TrackerServer struct {
	kingdomSvc  *service.KingdomService
	allianceSvc *service.AllianceService
	resultSvc   *service.ResultService
	logger      zerolog.Logger
}

func NewTrackerServer(
	kingdomSvc *service.KingdomService,
	allianceSvc *service.AllianceService,
	resultSvc *service.ResultService,
	logger zerolog.Logger,
) *TrackerServer {
	return &TrackerServer{
		kingdomSvc:  kingdomSvc,
		allianceSvc: allianceSvc,
		resultSvc:   resultSvc,
		logger:      logger,
	}
}

func (s *TrackerServer) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/kingdoms", s.GetDirectory)
	r.Get("/kingdoms/search", s.SearchKingdoms)
	r.Get("/kingdoms/{kingdomID}", s.GetKingdom)
	r.Get("/kingdoms/{kingdomID}/projection", s.GetProjection)
	r.Post("/kingdoms/{kingdomID}/results", s.SubmitResult)
	r.Get("/alliances/rollup", s.GetAllianceRollup)
	return r
}

func (s *TrackerServer) GetDirectory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.kingdomSvc.Directory(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	resp := make([]directoryEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = directoryEntryResponse{
			KingdomID:   e.Kingdom.KingdomID,
			Name:        e.Kingdom.Name,
			AllianceTag: e.Kingdom.AllianceTag,
			Power:       e.Kingdom.Power,
			Score:       e.Breakdown.FinalScore,
			Tier:        string(e.Breakdown.Tier),
		}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *TrackerServer) GetKingdom(w http.ResponseWriter, r *http.Request) {
	kingdomID, err := strconv.Atoi(chi.URLParam(r, "kingdomID"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	refresh := r.URL.Query().Get("refresh") == "true"

	profile, err := s.kingdomSvc.GetProfile(r.Context(), kingdomID, refresh)
	if err != nil {
		s.writeError(w, r, errorStatus(err, http.StatusInternalServerError), err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, toProfileResponse(profile))
}

func (s *TrackerServer) GetProjection(w http.ResponseWriter, r *http.Request) {
	kingdomID, err := strconv.Atoi(chi.URLParam(r, "kingdomID"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	projection, err := s.kingdomSvc.GetProjection(r.Context(), kingdomID)
	if err != nil {
		s.writeError(w, r, errorStatus(err, http.StatusInternalServerError), err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, toProjectionResponse(projection))
}

func (s *TrackerServer) SearchKingdoms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.writeJSON(w, r, http.StatusOK, []directoryEntryResponse{})
		return
	}

	kingdoms, err := s.kingdomSvc.SearchSuggestions(r.Context(), query)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	resp := make([]directoryEntryResponse, len(kingdoms))
	for i, k := range kingdoms {
		resp[i] = directoryEntryResponse{
			KingdomID:   k.KingdomID,
			Name:        k.Name,
			AllianceTag: k.AllianceTag,
			Power:       k.Power,
		}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

type submitResultRequest struct {
	SeasonNumber int    `json:"season_number"`
	OpponentID   int    `json:"opponent_id"`
	PhaseOne     string `json:"phase_one"`
	PhaseTwo     string `json:"phase_two"`
}

func (s *TrackerServer) SubmitResult(w http.ResponseWriter, r *http.Request) {
	kingdomID, err := strconv.Atoi(chi.URLParam(r, "kingdomID"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	var req submitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	profile, err := s.resultSvc.Submit(r.Context(), kingdomID, service.SubmitResultInput{
		SeasonNumber: req.SeasonNumber,
		OpponentID:   req.OpponentID,
		PhaseOne:     req.PhaseOne,
		PhaseTwo:     req.PhaseTwo,
	})
	if err != nil {
		s.writeError(w, r, errorStatus(err, http.StatusBadRequest), err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, toProfileResponse(profile))
}

func (s *TrackerServer) GetAllianceRollup(w http.ResponseWriter, r *http.Request) {
	ids, err := ParseKingdomIDs(r.URL.Query().Get("ids"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	rollup, err := s.allianceSvc.GetRollup(r.Context(), ids)
	if err != nil {
		s.writeError(w, r, errorStatus(err, http.StatusInternalServerError), err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, toRollupResponse(rollup))
}

// ParseKingdomIDs parses the comma-separated ids query parameter. An
// empty parameter is a valid empty alliance.
func ParseKingdomIDs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	s.writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
