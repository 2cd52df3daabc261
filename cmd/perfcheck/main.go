// perfcheck dry-runs a stat sheet against the default roster: it parses
// a CSV or HTML export, normalizes the rows and prints the resulting
// performances without touching the service. Useful for checking a
// sheet's headers before uploading it.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivaldes/gaffer/internal/ingest"
	"github.com/ivaldes/gaffer/internal/league"
)

var (
	inPath = flag.String("file", "", "Stat sheet to check (.csv or .html)")
	format = flag.String("format", "", "Force format: csv or html (default: by extension)")
)

func main() {
	flag.Parse()
	if *inPath == "" {
		log.Fatal("missing -file")
	}

	f, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("open %s: %v", *inPath, err)
	}
	defer f.Close()

	kind := *format
	if kind == "" {
		switch strings.ToLower(filepath.Ext(*inPath)) {
		case ".html", ".htm":
			kind = "html"
		default:
			kind = "csv"
		}
	}

	var rows []ingest.Row
	switch kind {
	case "html":
		rows, err = ingest.ParseHTMLTable(f)
	case "csv":
		rows, err = ingest.ParseCSV(f)
	default:
		log.Fatalf("unknown format %q (want csv or html)", kind)
	}
	if err != nil {
		log.Fatalf("parse %s: %v", *inPath, err)
	}

	perfs, result := ingest.NormalizeRows(rows, league.DefaultRoster())

	log.Printf("rows: %d, matched: %d, unmatched: %d, performances: %d",
		len(rows), result.Matched, result.Unmatched, result.Performances)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(perfs); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
