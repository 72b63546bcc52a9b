package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestQueryEq(t *testing.T) {
	q := NewQuery().Eq("branchId", "b1").Eq("available", true)
	filter := q.Filter()
	if filter["branchId"] != "b1" {
		t.Errorf("expected branchId filter, got %v", filter)
	}
	if filter["available"] != true {
		t.Errorf("expected available filter, got %v", filter)
	}
}

func TestQueryRangeMergesBounds(t *testing.T) {
	q := NewQuery().Gte("date", "2026-08-01").Lte("date", "2026-08-31")
	filter := q.Filter()

	clause, ok := filter["date"].(bson.M)
	if !ok {
		t.Fatalf("expected a single range document for date, got %T", filter["date"])
	}
	if clause["$gte"] != "2026-08-01" {
		t.Errorf("lower bound missing: %v", clause)
	}
	if clause["$lte"] != "2026-08-31" {
		t.Errorf("upper bound missing: %v", clause)
	}
}

func TestQueryRangeSingleBound(t *testing.T) {
	filter := NewQuery().Gte("price", 100.0).Filter()
	clause, ok := filter["price"].(bson.M)
	if !ok {
		t.Fatalf("expected range document, got %T", filter["price"])
	}
	if clause["$gte"] != 100.0 {
		t.Errorf("unexpected bound: %v", clause)
	}
	if _, ok := clause["$lte"]; ok {
		t.Errorf("unexpected upper bound: %v", clause)
	}
}

func TestQuerySortOrder(t *testing.T) {
	q := NewQuery().SortDesc("date").SortDesc("createdAt")
	if len(q.sort) != 2 {
		t.Fatalf("expected 2 sort keys, got %d", len(q.sort))
	}
	if q.sort[0].Key != "date" || q.sort[0].Value != -1 {
		t.Errorf("unexpected first sort key: %v", q.sort[0])
	}
	if q.sort[1].Key != "createdAt" {
		t.Errorf("unexpected second sort key: %v", q.sort[1])
	}
}

func TestQueryLimit(t *testing.T) {
	q := NewQuery().Limit(100)
	if q.limit != 100 {
		t.Fatalf("expected limit 100, got %d", q.limit)
	}
}
