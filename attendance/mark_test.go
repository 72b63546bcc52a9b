package attendance

import (
	"context"
	"fmt"
	"testing"

	"atrium/models"
	"atrium/store"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeRecords keeps attendance rows in memory and answers the
// staffId+date lookup the upsert performs.
type fakeRecords struct {
	rows    []models.Attendance
	nextID  int
	updates map[string]bson.M
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{updates: map[string]bson.M{}}
}

func (f *fakeRecords) List(_ context.Context, q *store.Query) ([]models.Attendance, error) {
	filter := q.Filter()
	staffID, _ := filter["staffId"].(string)
	date, _ := filter["date"].(string)

	var out []models.Attendance
	for _, r := range f.rows {
		if staffID != "" && r.StaffID != staffID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecords) Create(_ context.Context, doc models.Attendance) (string, error) {
	f.nextID++
	doc.ID = fmt.Sprintf("att%d", f.nextID)
	f.rows = append(f.rows, doc)
	return doc.ID, nil
}

func (f *fakeRecords) Update(_ context.Context, id string, fields bson.M) error {
	for i, r := range f.rows {
		if r.ID == id {
			if s, ok := fields["status"].(string); ok {
				f.rows[i].Status = s
			}
			if n, ok := fields["notes"].(string); ok {
				f.rows[i].Notes = n
			}
			f.updates[id] = fields
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeRecords) Delete(_ context.Context, id string) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func TestMarkCreatesThenUpdatesSameDay(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	first := models.Attendance{StaffID: "s1", Date: "2026-08-31", Status: models.AttendancePresent}
	rec, created, err := upsertByStaffDate(ctx, records, first)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if !created {
		t.Fatal("expected first mark to create a record")
	}
	if rec.ID == "" {
		t.Fatal("expected created record to carry an id")
	}

	second := models.Attendance{StaffID: "s1", Date: "2026-08-31", Status: models.AttendanceLate, Notes: "traffic"}
	rec2, created2, err := upsertByStaffDate(ctx, records, second)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if created2 {
		t.Fatal("second mark for the same staff and date must update, not create")
	}
	if rec2.ID != rec.ID {
		t.Fatalf("expected same record id, got %s and %s", rec.ID, rec2.ID)
	}
	if len(records.rows) != 1 {
		t.Fatalf("expected one stored record, got %d", len(records.rows))
	}
	if records.rows[0].Status != models.AttendanceLate {
		t.Fatalf("expected status updated to late, got %s", records.rows[0].Status)
	}
	if records.rows[0].Notes != "traffic" {
		t.Fatalf("expected notes updated, got %q", records.rows[0].Notes)
	}
}

func TestMarkDifferentDatesCreateSeparateRecords(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	for _, date := range []string{"2026-08-30", "2026-08-31"} {
		_, created, err := upsertByStaffDate(ctx, records, models.Attendance{
			StaffID: "s1", Date: date, Status: models.AttendancePresent,
		})
		if err != nil {
			t.Fatalf("mark %s: %v", date, err)
		}
		if !created {
			t.Fatalf("expected a new record for %s", date)
		}
	}
	if len(records.rows) != 2 {
		t.Fatalf("expected two records, got %d", len(records.rows))
	}
}

func TestUpsertPreservesCheckTimesWhenOmitted(t *testing.T) {
	records := newFakeRecords()
	ctx := context.Background()

	_, _, err := upsertByStaffDate(ctx, records, models.Attendance{
		StaffID: "s2", Date: "2026-08-31", Status: models.AttendancePresent, CheckInTime: "09:00",
	})
	if err != nil {
		t.Fatalf("initial mark: %v", err)
	}

	rec, _, err := upsertByStaffDate(ctx, records, models.Attendance{
		StaffID: "s2", Date: "2026-08-31", Status: models.AttendanceLeave,
	})
	if err != nil {
		t.Fatalf("update mark: %v", err)
	}
	if rec.CheckInTime != "09:00" {
		t.Fatalf("expected check-in time preserved, got %q", rec.CheckInTime)
	}
	fields := records.updates[rec.ID]
	if _, ok := fields["checkInTime"]; ok {
		t.Fatal("update must not overwrite check-in time when input omits it")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate, models.AttendanceLeave} {
		if !validStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "holiday", "PRESENT"} {
		if validStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
