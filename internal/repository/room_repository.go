// This file defines repository methods for rooms: list, create, full-replace
// update, status toggle and delete, each scoped to the owning identity.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
)

// ErrRoomNotFound is returned when a room cannot be found under the given
// owner.  Absent and foreign-owned rows are deliberately indistinguishable.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo encapsulates all database queries related to rooms.  It depends on
// a sql.DB connection which should be configured elsewhere.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomCols = "id, user_id, number, type, status, created_at, updated_at"

func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	r := new(model.Room)
	if err := row.Scan(&r.ID, &r.UserID, &r.Number, &r.Type, &r.Status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r, nil
}

// Create inserts a new room stamped with the owner identity already set on
// the model.  On success the ID field is populated with the auto-generated
// value and a follow-up SELECT fills the timestamp defaults so callers
// receive a fully populated record.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	if room.UserID == "" {
		return ErrInvalidOwner
	}
	const qInsert = "INSERT INTO rooms (user_id, number, type, status) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, room.UserID, room.Number, room.Type, room.Status)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)

	const qSelect = "SELECT " + roomCols + " FROM rooms WHERE id = ?"
	got, err := scanRoom(r.db.QueryRowContext(ctx, qSelect, room.ID))
	if err != nil {
		return err
	}
	*room = *got
	return nil
}

// ListByOwner returns all rooms for a specific owner ordered by id.  A fresh
// tenant gets an empty (non-nil) slice.
func (r *RoomRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Room, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + roomCols + " FROM rooms WHERE user_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a room by id but only if it belongs to the
// specified owner.  If the room doesn't exist or is owned by someone else,
// ErrRoomNotFound is returned.
func (r *RoomRepo) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.Room, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + roomCols + " FROM rooms WHERE id = ? AND user_id = ?"
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

// Update applies a full replacement to the room matching both id and owner.
// When nothing matched (absent or another tenant's row) it returns
// sql.ErrNoRows so the handler can answer with an empty result.  The row is
// re-read after the write so callers get the stored state, not the payload.
func (r *RoomRepo) Update(ctx context.Context, id uint64, ownerID string, room *model.Room) (*model.Room, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = `UPDATE rooms
	           SET number = ?, type = ?, status = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, q, room.Number, room.Type, room.Status, id, ownerID); err != nil {
		return nil, err
	}
	// Re-select under the same compound filter; zero rows means the update
	// matched nothing.  RowsAffected is not used because MySQL reports zero
	// for an update that left values unchanged.
	const qSelect = "SELECT " + roomCols + " FROM rooms WHERE id = ? AND user_id = ?"
	got, err := scanRoom(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err // sql.ErrNoRows when not found / not owned
	}
	return got, nil
}

// Toggle flips the status of the room matching id and owner between
// available and occupied.  It returns ErrRoomNotFound when no row matches,
// which handlers translate into a 404; this is the one operation that
// reports a miss explicitly.
func (r *RoomRepo) Toggle(ctx context.Context, id uint64, ownerID string) (*model.Room, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	var status string
	const qStatus = "SELECT status FROM rooms WHERE id = ? AND user_id = ?"
	if err := r.db.QueryRowContext(ctx, qStatus, id, ownerID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	const qUpdate = `UPDATE rooms
	                 SET status = ?, updated_at = CURRENT_TIMESTAMP
	                 WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, qUpdate, model.ToggledStatus(status), id, ownerID); err != nil {
		return nil, err
	}
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

// Delete removes the room matching id and owner and returns a snapshot of
// the deleted row.  When nothing matches it returns sql.ErrNoRows; deleting
// a non-owned or non-existent id is a silent no-op at the API level.
func (r *RoomRepo) Delete(ctx context.Context, id uint64, ownerID string) (*model.Room, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	// Snapshot first so the response can echo the deleted row; the DELETE
	// below still carries the compound filter, so a miss here and a miss
	// there behave identically.
	const qSelect = "SELECT " + roomCols + " FROM rooms WHERE id = ? AND user_id = ?"
	room, err := scanRoom(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err // sql.ErrNoRows when not found / not owned
	}
	const qDelete = "DELETE FROM rooms WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, qDelete, id, ownerID); err != nil {
		return nil, err
	}
	return room, nil
}
