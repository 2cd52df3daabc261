package ingest

import (
	"strconv"
	"strings"

	"github.com/ivaldes/gaffer/internal/league"
)

// Row is one record from an external stat sheet: header label → raw cell.
// Headers arrive in whatever casing and language the source used.
type Row map[string]string

// Accepted header labels per field, compared after trim + casefold.
// English and Spanish variants, matching the sheets people actually send.
var (
	nameLabels    = []string{"name", "player", "nombre"}
	minutesLabels = []string{"minutes", "minutos", "min"}
	playedLabels  = []string{"played", "jugado"}
	ratingLabels  = []string{"rating", "nota"}
	goalsLabels   = []string{"goals", "goles"}
	assistsLabels = []string{"assists", "asistencias"}
	yellowLabels  = []string{"yellow", "amarilla"}
	redLabels     = []string{"red", "roja"}
	motmLabels    = []string{"motm", "mvp"}
)

const (
	defaultRating = 6
	fullMatch     = 90
)

// ImportResult summarizes one normalization pass for user feedback.
type ImportResult struct {
	Matched      int `json:"matched"`
	Unmatched    int `json:"unmatched"`
	Performances int `json:"performances"`
}

// NormalizeRows converts raw rows into validated performances against the
// given roster. Rows that do not resolve to a roster player are dropped
// without error; a matched row with zero minutes counts as "did not play"
// and emits no performance. Per-field parse failures fall back to neutral
// defaults and never abort the pass.
func NormalizeRows(rows []Row, roster []league.Player) ([]league.PlayerPerformance, ImportResult) {
	var (
		perfs  []league.PlayerPerformance
		result ImportResult
	)

	for _, row := range rows {
		perf, ok := normalizeRow(row, roster)
		if !ok {
			result.Unmatched++
			continue
		}
		result.Matched++
		if perf.Minutes <= 0 {
			continue
		}
		perfs = append(perfs, perf)
	}

	result.Performances = len(perfs)
	return perfs, result
}

func normalizeRow(row Row, roster []league.Player) (league.PlayerPerformance, bool) {
	fields := canonicalize(row)

	name, ok := lookup(fields, nameLabels)
	if !ok || strings.TrimSpace(name) == "" {
		return league.PlayerPerformance{}, false
	}

	player, ok := resolvePlayer(name, roster)
	if !ok {
		return league.PlayerPerformance{}, false
	}

	return league.PlayerPerformance{
		PlayerID:      player.ID,
		Minutes:       resolveMinutes(fields),
		Goals:         parseCount(fields, goalsLabels),
		Assists:       parseCount(fields, assistsLabels),
		Rating:        parseRating(fields),
		YellowCard:    parseFlag(fields, yellowLabels),
		RedCard:       parseFlag(fields, redLabels),
		ManOfTheMatch: parseFlag(fields, motmLabels),
	}, true
}

// resolvePlayer matches a sheet name to a roster player by trimmed,
// case-folded exact comparison.
func resolvePlayer(name string, roster []league.Player) (league.Player, bool) {
	want := normalizeName(name)
	for _, p := range roster {
		if normalizeName(p.Name) == want {
			return p, true
		}
	}
	return league.Player{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// resolveMinutes reads an explicit minutes column, falling back to a
// binary played flag (yes → full match, else 0).
func resolveMinutes(fields Row) int {
	if raw, ok := lookup(fields, minutesLabels); ok {
		if minutes, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && minutes > 0 {
			return minutes
		}
	}
	if truthy(valueOf(fields, playedLabels)) {
		return fullMatch
	}
	return 0
}

func parseRating(fields Row) float64 {
	if raw, ok := lookup(fields, ratingLabels); ok {
		raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			return rating
		}
	}
	return defaultRating
}

func parseCount(fields Row, labels []string) int {
	if raw, ok := lookup(fields, labels); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func parseFlag(fields Row, labels []string) bool {
	return truthy(valueOf(fields, labels))
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "x", "si", "sí":
		return true
	}
	return false
}

// canonicalize lowercases and trims header labels so lookups are
// case-insensitive. Unrecognized columns ride along and are ignored.
func canonicalize(row Row) Row {
	fields := make(Row, len(row))
	for k, v := range row {
		fields[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return fields
}

func lookup(fields Row, labels []string) (string, bool) {
	for _, label := range labels {
		if v, ok := fields[label]; ok {
			return v, true
		}
	}
	return "", false
}

func valueOf(fields Row, labels []string) string {
	v, _ := lookup(fields, labels)
	return v
}
