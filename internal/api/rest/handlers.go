package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/ivaldes/gaffer/internal/ingest"
	"github.com/ivaldes/gaffer/internal/league"
	"github.com/ivaldes/gaffer/internal/service"
)

// maxImportSize bounds uploaded stat sheets.
const maxImportSize = 4 << 20 // 4 MiB

// Handler contains dependencies for HTTP handlers
type Handler struct {
	manager *service.Manager
}

// NewHandler creates a new handler
func NewHandler(manager *service.Manager) *Handler {
	return &Handler{manager: manager}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "gaffer",
		"version": "1.0.0",
	})
}

// GetTeamConfig returns the team identity.
func (h *Handler) GetTeamConfig(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.TeamConfig())
}

// PutTeamConfig replaces the team identity.
func (h *Handler) PutTeamConfig(w http.ResponseWriter, r *http.Request) {
	var cfg league.TeamConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team config", err)
		return
	}
	if strings.TrimSpace(cfg.Name) == "" {
		respondError(w, http.StatusBadRequest, "Team name is required", nil)
		return
	}

	if err := h.manager.SetTeamConfig(r.Context(), cfg); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save team config", err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// GetMatches returns the full match history.
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.Matches())
}

// GetMatch returns one match by id.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchID"]

	match, ok := h.manager.MatchByID(matchID)
	if !ok {
		respondError(w, http.StatusNotFound, "Match not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// PostMatch saves a played match and its performances. This is also the
// entry point for external result producers: anything shaped like a
// match record is accepted.
func (h *Handler) PostMatch(w http.ResponseWriter, r *http.Request) {
	var match league.MatchRecord
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid match record", err)
		return
	}
	if strings.TrimSpace(match.Opponent) == "" {
		respondError(w, http.StatusBadRequest, "Opponent name is required", nil)
		return
	}
	if match.MyScore < 0 || match.OpponentScore < 0 {
		respondError(w, http.StatusBadRequest, "Scores must not be negative", nil)
		return
	}

	saved, err := h.manager.AddMatch(r.Context(), match)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save match", err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// ImportPerformances normalizes an uploaded stat sheet (CSV or HTML
// table) against the current roster and returns the resulting
// performances. Nothing is saved: the client reviews and then posts the
// full match, mirroring upload-then-save entry.
func (h *Handler) ImportPerformances(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file upload", err)
		return
	}
	defer file.Close()

	var rows []ingest.Row
	switch ext := strings.ToLower(filepath.Ext(header.Filename)); ext {
	case ".html", ".htm":
		rows, err = ingest.ParseHTMLTable(file)
	case ".csv", ".txt", "":
		rows, err = ingest.ParseCSV(file)
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file type %q", ext), nil)
		return
	}
	if err != nil {
		// The one hard ingestion failure: the source could not be
		// parsed into rows at all.
		respondError(w, http.StatusUnprocessableEntity, "Failed to parse file", err)
		return
	}

	perfs, result := ingest.NormalizeRows(rows, h.manager.Roster(r.Context()))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"performances": perfs,
		"matched":      result.Matched,
		"unmatched":    result.Unmatched,
	})
}

// GetRoster returns the final roster (base plus manual edits).
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.Roster(r.Context()))
}

// GetBaseRoster returns the roster as computed from match history alone.
func (h *Handler) GetBaseRoster(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.BaseRoster())
}

// PostPlayer adds a custom player to the roster.
func (h *Handler) PostPlayer(w http.ResponseWriter, r *http.Request) {
	var player league.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player", err)
		return
	}
	if strings.TrimSpace(player.Name) == "" {
		respondError(w, http.StatusBadRequest, "Player name is required", nil)
		return
	}

	added, err := h.manager.AddPlayer(r.Context(), player)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to add player", err)
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

// PutPlayer records a manual correction for one player. Statistical
// fields become offsets against the computed base; identity fields are
// stored as direct overrides.
func (h *Handler) PutPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	var upd league.PlayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player update", err)
		return
	}
	if upd.Position != nil && !upd.Position.Valid() {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid position %q", *upd.Position), nil)
		return
	}

	if err := h.manager.UpdatePlayer(r.Context(), playerID, upd); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to record edit", err)
		return
	}
	respondJSON(w, http.StatusOK, h.manager.Roster(r.Context()))
}

// GetLeagueStats returns the season record and recent form.
func (h *Handler) GetLeagueStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.LeagueStats())
}

// GetTeamBalance returns fantasy points grouped by position.
func (h *Handler) GetTeamBalance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.manager.TeamBalance())
}

// GetOpponents returns suggested opponent names for match entry.
func (h *Handler) GetOpponents(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, league.DefaultOpponents)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
