package staff

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"atrium/models"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintIDCards renders printable ID cards for the selected staff members
// (ids query parameter, comma separated; empty means everyone).
func PrintIDCards(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := store.NewQuery().SortAsc("name")
	ids := utils.SplitCSV(r.URL.Query().Get("ids"))

	members, err := Members.List(ctx, q)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch staff")
		return
	}
	if len(ids) > 0 {
		members = filterByID(members, ids)
	}
	if len(members) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "No matching staff members")
		return
	}

	pdf, err := BuildIDCardPDF(members)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build ID cards")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="staff_id_cards.pdf"`)
	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to write PDF")
	}
}

func filterByID(members []models.StaffMember, ids []string) []models.StaffMember {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.StaffMember
	for _, m := range members {
		if want[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// BuildIDCardPDF lays out one card per member, four per page, with a QR
// code carrying the employee id for gate scanners.
func BuildIDCardPDF(members []models.StaffMember) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	const cardW, cardH = 85.0, 54.0
	const marginX, marginY, gapY = 20.0, 20.0, 12.0

	for i, m := range members {
		slot := i % 4
		if slot == 0 {
			pdf.AddPage()
		}
		x := marginX
		y := marginY + float64(slot)*(cardH+gapY)

		pdf.SetDrawColor(60, 60, 60)
		pdf.Rect(x, y, cardW, cardH, "D")

		pdf.SetFont("Arial", "B", 13)
		pdf.SetXY(x+4, y+5)
		pdf.CellFormat(cardW-8, 7, "STAFF ID CARD", "", 0, "C", false, 0, "")

		pdf.SetFont("Arial", "B", 11)
		pdf.SetXY(x+4, y+15)
		pdf.CellFormat(cardW-30, 6, m.Name, "", 0, "L", false, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.SetXY(x+4, y+22)
		pdf.CellFormat(cardW-30, 5, m.Position, "", 0, "L", false, 0, "")
		pdf.SetXY(x+4, y+27)
		pdf.CellFormat(cardW-30, 5, m.Department, "", 0, "L", false, 0, "")
		pdf.SetXY(x+4, y+34)
		pdf.CellFormat(cardW-30, 5, "ID: "+m.EmployeeID, "", 0, "L", false, 0, "")

		qrPNG, err := qrcode.Encode(m.EmployeeID, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("qr for %s: %w", m.EmployeeID, err)
		}
		imgName := "qr-" + m.ID
		pdf.RegisterImageOptionsReader(imgName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
		pdf.ImageOptions(imgName, x+cardW-24, y+15, 20, 20, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		pdf.SetFont("Arial", "I", 7)
		pdf.SetXY(x+4, y+cardH-8)
		pdf.CellFormat(cardW-8, 4, "Property of the hotel. Return if found.", "", 0, "C", false, 0, "")
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf build failed: %v", pdf.Error())
	}
	return pdf, nil
}
