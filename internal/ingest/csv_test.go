package ingest

import (
	"strings"
	"testing"
)

func TestParseCSV_HeaderKeyedRows(t *testing.T) {
	src := "Name,Minutes,Goals\nDaniel,90,2\nGuille,45,0\n"

	rows, err := ParseCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["Name"] != "Daniel" || rows[0]["Minutes"] != "90" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["Goals"] != "0" {
		t.Errorf("row 1 Goals = %q, want 0", rows[1]["Goals"])
	}
}

func TestParseCSV_ShortRecordsTolerated(t *testing.T) {
	src := "Name,Minutes,Goals\nDaniel,90\n"

	rows, err := ParseCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if _, ok := rows[0]["Goals"]; ok {
		t.Error("missing trailing cell should be absent, not empty")
	}
}

func TestParseCSV_EmptyInputFails(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseCSV_MalformedQuoteFails(t *testing.T) {
	src := "Name,Minutes\n\"Daniel,90\nGuille,45\n"

	if _, err := ParseCSV(strings.NewReader(src)); err == nil {
		t.Error("expected error for unterminated quote")
	}
}
