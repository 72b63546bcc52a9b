package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"atrium/models"
	"atrium/mq"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func validStatus(s string) bool {
	switch s {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate, models.AttendanceLeave:
		return true
	default:
		return false
	}
}

// MarkAttendance records a staff member's status for a date. The
// collection has no uniqueness constraint, so the handler enforces one
// record per (staffId, date): an existing record is updated in place,
// never duplicated.
func MarkAttendance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input models.Attendance
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.StaffID == "" || input.Date == "" || input.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "staffId, date and status are required")
		return
	}
	if utils.ParseDate(input.Date) == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !validStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Status must be present, absent, late or leave")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	record, created, err := upsertByStaffDate(ctx, Records, input)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save attendance")
		return
	}

	method := "PUT"
	status := http.StatusOK
	if created {
		method = "POST"
		status = http.StatusCreated
	}
	go mq.Emit(r.Context(), "attendance-marked", models.Index{EntityType: "attendance", EntityId: record.ID, Method: method})

	utils.RespondWithJSON(w, status, record)
}

// upsertByStaffDate looks up the natural key first and updates the
// existing record rather than inserting a second one.
func upsertByStaffDate(ctx context.Context, records recordStore, input models.Attendance) (models.Attendance, bool, error) {
	existing, err := records.List(ctx, store.NewQuery().
		Eq("staffId", input.StaffID).
		Eq("date", input.Date).
		Limit(1))
	if err != nil {
		return models.Attendance{}, false, err
	}

	if len(existing) > 0 {
		current := existing[0]
		fields := bson.M{
			"status": input.Status,
			"notes":  input.Notes,
		}
		if input.CheckInTime != "" {
			fields["checkInTime"] = input.CheckInTime
		}
		if input.CheckOutTime != "" {
			fields["checkOutTime"] = input.CheckOutTime
		}
		if err := records.Update(ctx, current.ID, fields); err != nil {
			return models.Attendance{}, false, err
		}
		current.Status = input.Status
		current.Notes = input.Notes
		if input.CheckInTime != "" {
			current.CheckInTime = input.CheckInTime
		}
		if input.CheckOutTime != "" {
			current.CheckOutTime = input.CheckOutTime
		}
		return current, false, nil
	}

	id, err := records.Create(ctx, input)
	if err != nil {
		return models.Attendance{}, false, err
	}
	input.ID = id
	return input, true, nil
}
