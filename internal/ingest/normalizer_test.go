package ingest

import (
	"testing"

	"github.com/ivaldes/gaffer/internal/league"
)

func sheetRoster() []league.Player {
	return []league.Player{
		{ID: "1", Name: "Juanpe", Position: league.GK},
		{ID: "2", Name: "Guille", Position: league.MID},
		{ID: "3", Name: "Daniel", Position: league.FWD},
	}
}

func TestNormalizeRows_EnglishHeaders(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Minutes": "90", "Goals": "2", "Assists": "1", "Rating": "8.5", "MOTM": "Yes"},
	}

	perfs, result := NormalizeRows(rows, sheetRoster())

	if result.Matched != 1 || len(perfs) != 1 {
		t.Fatalf("matched %d, perfs %d, want 1/1", result.Matched, len(perfs))
	}
	p := perfs[0]
	if p.PlayerID != "3" || p.Minutes != 90 || p.Goals != 2 || p.Assists != 1 {
		t.Errorf("performance = %+v", p)
	}
	if p.Rating != 8.5 || !p.ManOfTheMatch {
		t.Errorf("rating/motm = %v/%v, want 8.5/true", p.Rating, p.ManOfTheMatch)
	}
}

func TestNormalizeRows_SpanishHeaders(t *testing.T) {
	rows := []Row{
		{"Nombre": "Guille", "Minutos": "75", "Goles": "1", "Asistencias": "2", "Nota": "7,5", "Amarilla": "sí"},
	}

	perfs, _ := NormalizeRows(rows, sheetRoster())

	if len(perfs) != 1 {
		t.Fatalf("perfs = %d, want 1", len(perfs))
	}
	p := perfs[0]
	if p.PlayerID != "2" || p.Minutes != 75 || p.Goals != 1 || p.Assists != 2 {
		t.Errorf("performance = %+v", p)
	}
	if p.Rating != 7.5 {
		t.Errorf("Rating = %v, want 7.5 (decimal comma accepted)", p.Rating)
	}
	if !p.YellowCard {
		t.Error("YellowCard = false, want true")
	}
}

func TestNormalizeRows_NameMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	rows := []Row{
		{"player": "  JUANPE  ", "minutes": "90"},
	}

	perfs, result := NormalizeRows(rows, sheetRoster())

	if result.Matched != 1 {
		t.Fatalf("Matched = %d, want 1", result.Matched)
	}
	if perfs[0].PlayerID != "1" {
		t.Errorf("PlayerID = %s, want 1", perfs[0].PlayerID)
	}
}

func TestNormalizeRows_UnknownNameDropped(t *testing.T) {
	rows := []Row{
		{"Name": "Nobody", "Minutes": "90"},
		{"Name": "Daniel", "Minutes": "90"},
	}

	perfs, result := NormalizeRows(rows, sheetRoster())

	if result.Matched != 1 || result.Unmatched != 1 {
		t.Errorf("matched/unmatched = %d/%d, want 1/1", result.Matched, result.Unmatched)
	}
	if len(perfs) != 1 {
		t.Errorf("perfs = %d, want 1 (unknown row dropped silently)", len(perfs))
	}
}

func TestNormalizeRows_MissingRatingDefaultsTo6(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Minutes": "90"},
	}

	perfs, _ := NormalizeRows(rows, sheetRoster())

	if len(perfs) != 1 {
		t.Fatalf("perfs = %d, want 1", len(perfs))
	}
	if perfs[0].Rating != 6 {
		t.Errorf("Rating = %v, want 6 (neutral default)", perfs[0].Rating)
	}
}

func TestNormalizeRows_PlayedFlagFallsBackTo90Minutes(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Played": "Yes"},
	}

	perfs, _ := NormalizeRows(rows, sheetRoster())

	if len(perfs) != 1 || perfs[0].Minutes != 90 {
		t.Fatalf("perfs = %+v, want one with 90 minutes", perfs)
	}
}

func TestNormalizeRows_ZeroMinutesMatchedButExcluded(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Minutes": "0"},
		{"Name": "Guille"}, // no minutes, no played flag
	}

	perfs, result := NormalizeRows(rows, sheetRoster())

	if result.Matched != 2 {
		t.Errorf("Matched = %d, want 2 (rows resolved by name)", result.Matched)
	}
	if len(perfs) != 0 {
		t.Errorf("perfs = %d, want 0 (did-not-play rows excluded)", len(perfs))
	}
}

func TestNormalizeRows_MalformedFieldsFallBack(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Minutes": "90", "Goals": "lots", "Rating": "n/a", "Red": "no"},
	}

	perfs, _ := NormalizeRows(rows, sheetRoster())

	if len(perfs) != 1 {
		t.Fatalf("perfs = %d, want 1 (malformed fields never abort the row)", len(perfs))
	}
	p := perfs[0]
	if p.Goals != 0 || p.Rating != 6 || p.RedCard {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestNormalizeRows_ExtraColumnsIgnored(t *testing.T) {
	rows := []Row{
		{"Name": "Daniel", "Minutes": "90", "Shirt Sponsor": "ACME", "Weather": "rain"},
	}

	perfs, result := NormalizeRows(rows, sheetRoster())

	if result.Matched != 1 || len(perfs) != 1 {
		t.Errorf("matched/perfs = %d/%d, want 1/1", result.Matched, len(perfs))
	}
}
