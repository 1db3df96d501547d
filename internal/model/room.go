package model

import "time"

// Room status values.  The status column only ever holds one of these two
// strings; Toggle flips between them and nothing else.
const (
    RoomAvailable = "available"
    RoomOccupied  = "occupied"
)

// Room represents a row in the `rooms` table.  Every room belongs to the
// operator account identified by UserID; the identity string is the tenant
// key and every repository query filters on it.  These structs are returned
// directly by the API handlers, hence the json tags.
//
// Fields:
//  ID        – primary key identifier of the room.
//  UserID    – owning operator identity stamped at creation.
//  Number    – room number as displayed to staff (free-form string).
//  Type      – room category (e.g. "single", "double", "suite").
//  Status    – RoomAvailable or RoomOccupied.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Room struct {
    ID        uint64    `json:"id"`         // rooms.id
    UserID    string    `json:"user_id"`    // rooms.user_id
    Number    string    `json:"number"`     // rooms.number
    Type      string    `json:"type"`       // rooms.type
    Status    string    `json:"status"`     // rooms.status
    CreatedAt time.Time `json:"created_at"` // rooms.created_at
    UpdatedAt time.Time `json:"updated_at"` // rooms.updated_at
}

// ToggledStatus returns the opposite of the given room status.  Any value
// other than RoomAvailable (including an unexpected one read back from the
// store) flips to RoomAvailable so the pair stays closed under toggling.
func ToggledStatus(current string) string {
    if current == RoomAvailable {
        return RoomOccupied
    }
    return RoomAvailable
}
