package attendance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"atrium/models"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

var reportColumns = []string{"Staff Name", "Date", "Status", "Check In", "Check Out", "Notes"}

// BuildReportRows resolves staff names and formats one table row per
// record, in the order the records came back.
func BuildReportRows(records []models.Attendance, staff []models.StaffMember) [][]string {
	names := make(map[string]string, len(staff))
	for _, s := range staff {
		names[s.ID] = s.Name
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		name := names[rec.StaffID]
		if name == "" {
			name = "Unknown Staff"
		}
		rows = append(rows, []string{
			name,
			rec.Date,
			rec.Status,
			orDash(rec.CheckInTime),
			orDash(rec.CheckOutTime),
			orDash(rec.Notes),
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateCell shortens a cell to max runes, never splitting a
// multi-byte character.
func truncateCell(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func fetchRange(ctx context.Context, start, end string) ([]models.Attendance, []models.StaffMember, error) {
	records, err := Records.List(ctx, rangeQuery(start, end))
	if err != nil {
		return nil, nil, err
	}
	staff, err := Roster.List(ctx, store.NewQuery())
	if err != nil {
		return nil, nil, err
	}
	return records, staff, nil
}

// ReportPDF renders the date range as a printable table.
func ReportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" || end == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, staff, err := fetchRange(ctx, start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", start, end))
	pdf.Ln(12)

	widths := []float64{40, 25, 22, 26, 26, 45}
	pdf.SetFont("Arial", "B", 10)
	for i, col := range reportColumns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range BuildReportRows(records, staff) {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, truncateCell(cell, 28), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="Attendance_Report_%s_%s.pdf"`, start, end))
	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to write PDF")
	}
}

// ReportCSV is the same range export as rows.
func ReportCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" || end == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, staff, err := fetchRange(ctx, start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="Attendance_Report_%s_%s.csv"`, start, end))

	if err := writeReportCSV(w, records, staff); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to write CSV")
	}
}

func writeReportCSV(w io.Writer, records []models.Attendance, staff []models.StaffMember) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportColumns); err != nil {
		return err
	}
	for _, row := range BuildReportRows(records, staff) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
