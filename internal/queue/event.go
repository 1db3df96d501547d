// Package queue defines message payloads exchanged over the message broker.
package queue

// RecordChangedEvent is published after every successful create, update,
// toggle or delete on a tenant-scoped resource.  It carries enough for
// downstream consumers to build an activity feed or audit trail without
// querying the primary database.
type RecordChangedEvent struct {
    Resource   string `json:"resource"`    // "rooms", "menu_photo", "menu_list", "events"
    Action     string `json:"action"`      // "created", "updated", "toggled", "deleted"
    RecordID   uint64 `json:"record_id"`   // id of the affected row
    UserID     string `json:"user_id"`     // identity of the acting tenant
    OccurredAt string `json:"occurred_at"` // RFC3339 UTC timestamp
}
