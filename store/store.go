package store

import (
	"context"
	"fmt"
	"time"

	"atrium/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is a typed repository over one collection. It is constructed
// with an explicit collection handle so tests can hand it a mock
// deployment instead of the process-wide client.
type Store[T any] struct {
	coll *mongo.Collection
}

func New[T any](coll *mongo.Collection) *Store[T] {
	return &Store[T]{coll: coll}
}

// List returns documents matching q, in the requested sort order.
func (s *Store[T]) List(ctx context.Context, q *Query) ([]T, error) {
	if q == nil {
		q = NewQuery()
	}
	opts := options.Find()
	if len(q.sort) > 0 {
		opts.SetSort(q.sort)
	}
	if q.limit > 0 {
		opts.SetLimit(q.limit)
	}

	cursor, err := s.coll.Find(ctx, q.filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Get fetches a single document by its assigned identifier.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return doc, ErrNotFound
	}
	return doc, err
}

// Create inserts doc and returns the assigned identifier. The store, not
// the caller, assigns the id and the created/updated timestamps.
func (s *Store[T]) Create(ctx context.Context, doc T) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", fmt.Errorf("unmarshal document: %w", err)
	}

	id, _ := fields["id"].(string)
	if id == "" {
		id = utils.GetUUID()
		fields["id"] = id
	}
	now := time.Now()
	fields["createdAt"] = now
	fields["updatedAt"] = now

	if _, err := s.coll.InsertOne(ctx, fields); err != nil {
		return "", err
	}
	return id, nil
}

// Update applies a partial $set to the document with the given id.
func (s *Store[T]) Update(ctx context.Context, id string, fields bson.M) error {
	update := bson.M{}
	for k, v := range fields {
		update[k] = v
	}
	update["updatedAt"] = time.Now()

	res, err := s.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document with the given id.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
