package attendance

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"atrium/models"
	"atrium/store"
)

func TestBuildReportRowsResolvesNames(t *testing.T) {
	staff := []models.StaffMember{
		{ID: "s1", Name: "Amina Yusuf"},
		{ID: "s2", Name: "Kabir Musa"},
	}
	records := []models.Attendance{
		{StaffID: "s1", Date: "2026-08-31", Status: models.AttendancePresent, CheckInTime: "08:55"},
		{StaffID: "s9", Date: "2026-08-31", Status: models.AttendanceAbsent},
	}

	rows := BuildReportRows(records, staff)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Amina Yusuf" {
		t.Errorf("expected resolved name, got %q", rows[0][0])
	}
	if rows[1][0] != "Unknown Staff" {
		t.Errorf("expected fallback for missing staff, got %q", rows[1][0])
	}
	if rows[0][3] != "08:55" {
		t.Errorf("expected check-in time in column 3, got %q", rows[0][3])
	}
	if rows[1][3] != "-" || rows[1][4] != "-" || rows[1][5] != "-" {
		t.Errorf("expected dashes for empty fields, got %v", rows[1])
	}
}

func TestBuildReportRowsEmpty(t *testing.T) {
	rows := BuildReportRows(nil, nil)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

// fakeRoster records the query it was asked to run.
type fakeRoster struct {
	staff     []models.StaffMember
	lastQuery *store.Query
}

func (f *fakeRoster) List(_ context.Context, q *store.Query) ([]models.StaffMember, error) {
	f.lastQuery = q
	return f.staff, nil
}

// The roster fetch backing the report join must be uncapped; a limited
// fetch would mislabel real staff as unknown.
func TestReportRosterFetchIsUnbounded(t *testing.T) {
	roster := &fakeRoster{}
	for i := 0; i < 150; i++ {
		roster.staff = append(roster.staff, models.StaffMember{
			ID:   fmt.Sprintf("s%d", i),
			Name: fmt.Sprintf("Staff %d", i),
		})
	}
	records := newFakeRecords()
	records.rows = []models.Attendance{
		{ID: "a1", StaffID: "s149", Date: "2026-08-31", Status: models.AttendancePresent},
	}

	prevRecords, prevRoster := Records, Roster
	Records, Roster = records, roster
	t.Cleanup(func() { Records, Roster = prevRecords, prevRoster })

	got, staff, err := fetchRange(context.Background(), "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("fetchRange: %v", err)
	}
	if roster.lastQuery.MaxResults() != 0 {
		t.Fatalf("roster query must not be capped, got limit %d", roster.lastQuery.MaxResults())
	}

	rows := BuildReportRows(got, staff)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0][0] != "Staff 149" {
		t.Fatalf("expected the 150th staff member resolved, got %q", rows[0][0])
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("short", 28); got != "short" {
		t.Errorf("short cell must pass through, got %q", got)
	}

	long := strings.Repeat("a", 40)
	got := truncateCell(long, 28)
	if got != strings.Repeat("a", 28)+"..." {
		t.Errorf("unexpected truncation: %q", got)
	}

	// multi-byte names must not be split mid-rune
	name := strings.Repeat("ÅŽ", 20)
	got = truncateCell(name, 28)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if len([]rune(got)) != 31 {
		t.Errorf("expected 28 runes plus ellipsis, got %d", len([]rune(got)))
	}
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	staff := []models.StaffMember{{ID: "s1", Name: "Amina Yusuf"}}
	records := []models.Attendance{
		{StaffID: "s1", Date: "2026-08-31", Status: models.AttendancePresent, CheckInTime: "08:55", CheckOutTime: "17:02"},
	}
	if err := writeReportCSV(&buf, records, staff); err != nil {
		t.Fatalf("writeReportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(reportColumns, ",") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Amina Yusuf") {
		t.Errorf("row missing staff name: %q", lines[1])
	}
}
