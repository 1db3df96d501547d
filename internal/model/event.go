package model

import "time"

// Event represents a row in the `events` table: a scheduled happening at the
// venue (wedding, conference, live music).  Date and time are kept as the
// display strings the operator typed; the backend never parses them.
type Event struct {
    ID        uint64    `json:"id"`         // events.id
    UserID    string    `json:"user_id"`    // events.user_id
    Name      string    `json:"name"`       // events.name
    Venue     string    `json:"venue"`      // events.venue
    Date      string    `json:"date"`       // events.date
    Time      string    `json:"time"`       // events.time
    CreatedAt time.Time `json:"created_at"` // events.created_at
    UpdatedAt time.Time `json:"updated_at"` // events.updated_at
}
