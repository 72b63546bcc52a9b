package staff

import (
	"bytes"
	"encoding/csv"
	"testing"

	"atrium/models"
)

func TestWriteStaffCSV(t *testing.T) {
	members := []models.StaffMember{
		{EmployeeID: "EMP123456", Name: "Amina Yusuf", Email: "amina@example.com", Department: "Housekeeping", Position: "Supervisor", Active: true},
		{EmployeeID: "EMP654321", Name: "Kabir Musa", Phone: "08012345678", Department: "Kitchen", Active: false},
	}

	var buf bytes.Buffer
	if err := WriteStaffCSV(&buf, members); err != nil {
		t.Fatalf("WriteStaffCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Employee ID" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Amina Yusuf" || rows[1][6] != "true" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][3] != "08012345678" || rows[2][6] != "false" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

func TestWriteStaffCSVEmptyRoster(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStaffCSV(&buf, nil); err != nil {
		t.Fatalf("WriteStaffCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
