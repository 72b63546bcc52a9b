package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"atrium/db"
	"atrium/models"
	"atrium/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

const auditChannel = "audit-events"

// Emit publishes an entity-change event to the audit channel. Failures
// are logged and dropped; an audit gap never blocks the mutation that
// produced it.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(map[string]any{
		"event":   eventName,
		"payload": content,
		"at":      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[Emit] marshal failed for %s: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), auditChannel, data).Err(); err != nil {
		log.Printf("[Emit] publish failed for %s: %v", eventName, err)
	}
}

// StartAuditWorker drains the audit channel into the audit trail
// collection. Runs for the lifetime of the process.
func StartAuditWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, auditChannel)
	ch := sub.Channel()

	log.Println("[AuditWorker] listening for entity-change events")

	for msg := range ch {
		var event bson.M
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[AuditWorker] bad payload: %v", err)
			continue
		}
		if _, err := db.AuditCollection.InsertOne(ctx, event); err != nil {
			log.Printf("[AuditWorker] insert failed: %v", err)
		}
	}
}
