// Package export renders the task collection in downloadable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/store"
)

// Formats supported by Export. JSON is the backing-file record format
// and the only one Import accepts back.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

const timeLayout = "2006-01-02 15:04"

// Exporter renders snapshots of a store.
type Exporter struct{ st store.Store }

// New creates an Exporter over st.
func New(st store.Store) *Exporter { return &Exporter{st: st} }

// Export writes the full collection to w in the named format.
func (e *Exporter) Export(w io.Writer, format string) error {
	tasks := e.st.List()
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"id", "title", "priority", "completed", "created_at", "completed_at"}); err != nil {
			return err
		}
		for _, t := range tasks {
			done := ""
			if t.CompletedAt != nil {
				done = t.CompletedAt.Format(timeLayout)
			}
			rec := []string{
				t.ID,
				t.Title,
				string(t.Priority),
				fmt.Sprintf("%t", t.Completed),
				t.CreatedAt.Format(timeLayout),
				done,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatPDF:
		return e.pdf(w, tasks)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

// pdf renders a one-page-flow report: stats summary, then one line per
// task in insertion order.
func (e *Exporter) pdf(w io.Writer, tasks []store.Task) error {
	stats := e.st.Stats()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("%d tasks: %d completed, %d pending (%.1f%% done)",
		stats.Total, stats.Completed, stats.Pending, stats.CompletionRate*100)
	pdf.MultiCell(0, 6, summary, "0", "L", false)
	pdf.Ln(4)

	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s (%s, created %s)", mark, t.Title, t.Priority, t.CreatedAt.Format(timeLayout))
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	return pdf.Output(w)
}

// ReadJSON parses an exported JSON snapshot back into task records.
// The records are not validated here; the store's Import owns that.
func ReadJSON(r io.Reader) ([]store.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var tasks []store.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}
	return tasks, nil
}
