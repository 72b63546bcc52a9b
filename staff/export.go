package staff

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"time"

	"atrium/models"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
)

// ExportStaffCSV streams the roster as a CSV attachment.
func ExportStaffCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	members, err := Members.List(ctx, store.NewQuery().SortAsc("name"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch staff")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="staff_roster.csv"`)

	if err := WriteStaffCSV(w, members); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to write CSV")
	}
}

// WriteStaffCSV renders the roster rows. Split out so it can be tested
// against a buffer.
func WriteStaffCSV(w io.Writer, members []models.StaffMember) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Employee ID", "Name", "Email", "Phone", "Department", "Position", "Active"}); err != nil {
		return err
	}
	for _, m := range members {
		row := []string{
			m.EmployeeID,
			m.Name,
			m.Email,
			m.Phone,
			m.Department,
			m.Position,
			strconv.FormatBool(m.Active),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
