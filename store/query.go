package store

import "go.mongodb.org/mongo-driver/bson"

// Query builds the filter, sort and limit for a List call. Filters are a
// conjunction of field predicates; sort is a single named field. Tie
// order between equal sort keys is whatever the server returns, so
// callers must not depend on it.
type Query struct {
	filter bson.M
	sort   bson.D
	limit  int64
}

func NewQuery() *Query {
	return &Query{filter: bson.M{}}
}

func (q *Query) Eq(field string, value any) *Query {
	q.filter[field] = value
	return q
}

func (q *Query) Gte(field string, value any) *Query {
	q.rangeClause(field, "$gte", value)
	return q
}

func (q *Query) Lte(field string, value any) *Query {
	q.rangeClause(field, "$lte", value)
	return q
}

// rangeClause merges bounds so Gte+Lte on one field become a single
// {$gte, $lte} document.
func (q *Query) rangeClause(field, op string, value any) {
	if existing, ok := q.filter[field].(bson.M); ok {
		existing[op] = value
		return
	}
	q.filter[field] = bson.M{op: value}
}

func (q *Query) SortAsc(field string) *Query {
	q.sort = append(q.sort, bson.E{Key: field, Value: 1})
	return q
}

func (q *Query) SortDesc(field string) *Query {
	q.sort = append(q.sort, bson.E{Key: field, Value: -1})
	return q
}

func (q *Query) Limit(n int64) *Query {
	q.limit = n
	return q
}

// Filter exposes the built filter document.
func (q *Query) Filter() bson.M {
	return q.filter
}

// MaxResults exposes the requested limit; zero means unbounded.
func (q *Query) MaxResults() int64 {
	return q.limit
}
