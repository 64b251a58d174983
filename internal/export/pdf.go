package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"todo/internal/service"
)

// BuildReport renders the list as a one-column A4 PDF with a
// remaining-count footer.
func BuildReport(list service.TaskList, generated time.Time) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Todo List", false)
	p.AddPage()

	p.SetFont("Arial", "B", 16)
	p.CellFormat(0, 10, "Todo List", "", 1, "C", false, 0, "")
	p.SetFont("Arial", "", 9)
	p.CellFormat(0, 6, generated.Format(time.DateTime), "", 1, "C", false, 0, "")
	p.Ln(6)

	// Core fonts are cp1252; translate so accented text survives.
	tr := p.UnicodeTranslatorFromDescriptor("")

	p.SetFont("Arial", "", 12)
	if len(list) == 0 {
		p.CellFormat(0, 8, "No tasks yet.", "", 1, "L", false, 0, "")
	}
	for i, t := range list {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		p.CellFormat(12, 8, fmt.Sprintf("%d.", i+1), "", 0, "R", false, 0, "")
		p.CellFormat(12, 8, mark, "", 0, "C", false, 0, "")
		p.MultiCell(0, 8, tr(t.Text), "", "L", false)
	}

	p.Ln(4)
	p.SetFont("Arial", "B", 12)
	p.CellFormat(0, 8, fmt.Sprintf("%d task(s) remaining", list.Remaining()), "T", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
