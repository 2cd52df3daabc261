package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTMLTable extracts rows from the first table of an HTML document.
// League sites commonly export match sheets as HTML tables; headers come
// from th cells, or from the first row when the table has none.
func ParseHTMLTable(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in document")
	}

	var header []string
	table.Find("th").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, strings.TrimSpace(cell.Text()))
	})

	trs := table.Find("tr")
	start := 0
	if len(header) == 0 {
		// Headerless table: promote the first row.
		trs.First().Find("td").Each(func(_ int, cell *goquery.Selection) {
			header = append(header, strings.TrimSpace(cell.Text()))
		})
		start = 1
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("table has no header cells")
	}

	var rows []Row
	trs.Each(func(i int, tr *goquery.Selection) {
		if i < start {
			return
		}
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return // header row or spacer
		}
		row := make(Row, len(header))
		cells.Each(func(j int, cell *goquery.Selection) {
			if j < len(header) {
				row[header[j]] = strings.TrimSpace(cell.Text())
			}
		})
		rows = append(rows, row)
	})

	return rows, nil
}
