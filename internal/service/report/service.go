package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	domain "github.com/worktrace/worktrace-backend-go/internal/domain/report"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
)

// Column layout of the export table, in mm on an A4 portrait page.
const (
	colDateWidth = 30.0
	colTypeWidth = 35.0
	colDescWidth = 125.0
	rowLineHt    = 6.0
)

// row is one planned table row, computed before any PDF drawing so the
// planning step stays testable without parsing PDF output.
type row struct {
	Date        string
	Type        string
	Description string
}

type reportServiceImpl struct {
	repo worklog.Repository
}

func NewReportService(repo worklog.Repository) domain.Service {
	return &reportServiceImpl{repo: repo}
}

// ExportRange implements report.Service.
func (s *reportServiceImpl) ExportRange(ctx context.Context, start, end time.Time) (domain.Document, error) {
	updates, err := s.repo.FetchRange(ctx, start, end)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to fetch entries for export: %w", err)
	}

	data, err := renderPDF(start, end, planRows(updates))
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to render export: %w", err)
	}

	return domain.Document{
		Filename: fmt.Sprintf("work-updates-%s-to-%s.pdf",
			start.Format("2006-01"), end.Format("2006-01")),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// planRows maps records to table rows. Blank descriptions get a
// placeholder so every row reads as a deliberate statement.
func planRows(updates []worklog.WorkUpdate) []row {
	rows := make([]row, 0, len(updates))
	for i := range updates {
		u := &updates[i]
		st := worklog.Classify(u)

		desc := u.Description
		if desc == "" {
			if u.LeaveType.IsLeave() {
				desc = "Leave day."
			} else {
				desc = "No description provided."
			}
		}

		rows = append(rows, row{
			Date:        u.Date.Format("2006-01-02"),
			Type:        st.Label,
			Description: desc,
		})
	}
	return rows
}

func renderPDF(start, end time.Time, rows []row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Work Updates Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		start.Format("02 Jan 2006"), end.Format("02 Jan 2006")))
	pdf.Ln(12)

	writeTableHeader(pdf)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		lines := pdf.SplitText(r.Description, colDescWidth-2)
		rowHt := float64(len(lines)) * rowLineHt
		if rowHt < rowLineHt {
			rowHt = rowLineHt
		}

		// Keep each row on one page; re-emit the header after a break.
		_, pageHt := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		if pdf.GetY()+rowHt > pageHt-bottom {
			pdf.AddPage()
			writeTableHeader(pdf)
			pdf.SetFont("Arial", "", 9)
		}

		x, y := pdf.GetXY()
		pdf.Rect(x, y, colDateWidth, rowHt, "D")
		pdf.Rect(x+colDateWidth, y, colTypeWidth, rowHt, "D")
		pdf.Rect(x+colDateWidth+colTypeWidth, y, colDescWidth, rowHt, "D")

		pdf.CellFormat(colDateWidth, rowLineHt, r.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(colTypeWidth, rowLineHt, r.Type, "", 0, "L", false, 0, "")

		pdf.SetXY(x+colDateWidth+colTypeWidth+1, y)
		pdf.MultiCell(colDescWidth-2, rowLineHt, r.Description, "", "L", false)

		pdf.SetXY(x, y+rowHt)
	}

	if len(rows) == 0 {
		pdf.Cell(0, 8, "No records in the selected period.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colDateWidth, 8, "DATE", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colTypeWidth, 8, "TYPE", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colDescWidth, 8, "DESCRIPTION", "1", 1, "L", true, 0, "")
}
