package orders

import (
	"testing"

	"atrium/models"
)

func TestStatusQueryFilters(t *testing.T) {
	q := statusQuery(models.OrderPending)
	filter := q.Filter()
	if filter["status"] != models.OrderPending {
		t.Fatalf("expected status filter, got %v", filter)
	}
}

func TestStatusQueryAllAndEmpty(t *testing.T) {
	for _, status := range []string{"", "all"} {
		filter := statusQuery(status).Filter()
		if _, ok := filter["status"]; ok {
			t.Errorf("status %q should not filter, got %v", status, filter)
		}
	}
}

func TestValidStatus(t *testing.T) {
	valid := []string{models.OrderPending, models.OrderConfirmed, models.OrderInProgress, models.OrderCompleted, models.OrderCancelled}
	for _, s := range valid {
		if !validStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "all", "shipped", "PENDING"} {
		if validStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
