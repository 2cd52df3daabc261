package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads a delimited stat sheet into rows keyed by the header
// line. Column order is free and short records are tolerated; a source
// that cannot be parsed into rows at all is the one hard failure.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+2, err)
		}

		row := make(Row, len(header))
		for i, label := range header {
			if i < len(record) {
				row[label] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
