package attendance

import (
	"context"
	"net/http"
	"sync"
	"time"

	"atrium/db"
	"atrium/models"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// recordStore is what the handlers need from the attendance collection;
// tests substitute a fake.
type recordStore interface {
	List(ctx context.Context, q *store.Query) ([]models.Attendance, error)
	Create(ctx context.Context, doc models.Attendance) (string, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

// rosterStore is the read side of the staff collection used for name
// resolution.
type rosterStore interface {
	List(ctx context.Context, q *store.Query) ([]models.StaffMember, error)
}

var Records recordStore = store.New[models.Attendance](db.AttendanceCollection)
var Roster rosterStore = store.New[models.StaffMember](db.StaffCollection)

func today() string {
	return time.Now().Format("2006-01-02")
}

// rangeQuery builds the inclusive [start, end] date filter, newest
// first.
func rangeQuery(start, end string) *store.Query {
	return store.NewQuery().
		Gte("date", start).
		Lte("date", end).
		SortDesc("date").
		SortDesc("createdAt")
}

// GetAttendance lists records in the requested date range together with
// the staff roster. The two reads are independent, so they are issued
// concurrently and joined before responding.
func GetAttendance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" {
		start = today()
	}
	if end == "" {
		end = start
	}
	if utils.ParseDate(start) == nil || utils.ParseDate(end) == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Dates must be YYYY-MM-DD")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var (
		wg        sync.WaitGroup
		records   []models.Attendance
		staff     []models.StaffMember
		recErr    error
		rosterErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		records, recErr = Records.List(ctx, rangeQuery(start, end))
	}()
	go func() {
		defer wg.Done()
		// full roster; a capped fetch would mislabel staff as unknown
		staff, rosterErr = Roster.List(ctx, store.NewQuery().SortAsc("name"))
	}()
	wg.Wait()

	if recErr != nil || rosterErr != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	if records == nil {
		records = []models.Attendance{}
	}
	if staff == nil {
		staff = []models.StaffMember{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"records": records,
		"staff":   staff,
	})
}

func DeleteAttendance(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Records.Delete(ctx, ps.ByName("id")); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Attendance record not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete attendance record")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
