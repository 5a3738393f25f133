package result

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"taskapi/internal/store"

	"github.com/jung-kurt/gofpdf"
)

type Exporter struct{ st *store.Store }

func NewExporter(st *store.Store) *Exporter { return &Exporter{st: st} }

func (e *Exporter) Export(ctx context.Context, format string) ([]byte, error) {
	all := e.st.List(ctx)
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(all, "", "  ")
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "title", "description", "completed"})
		for _, t := range all {
			_ = w.Write([]string{fmt.Sprint(t.ID), t.Title, t.Description, fmt.Sprint(t.Completed)})
		}
		w.Flush()
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task Report")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range all {
			state := "open"
			if t.Completed {
				state = "done"
			}
			line := fmt.Sprintf("#%d [%s] %s - %s", t.ID, state, t.Title, t.Description)
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}
