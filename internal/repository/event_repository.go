// Repository methods for venue events.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
)

// ErrEventNotFound is returned when an event cannot be found under the given
// owner.
var ErrEventNotFound = errors.New("event not found")

// EventRepo encapsulates all database queries related to the events table.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the provided DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventCols = "id, user_id, name, venue, date, time, created_at, updated_at"

func scanEvent(row interface{ Scan(...any) error }) (*model.Event, error) {
	e := new(model.Event)
	if err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Venue, &e.Date, &e.Time, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new event stamped with the owner identity and re-reads the
// row to populate generated fields.
func (r *EventRepo) Create(ctx context.Context, ev *model.Event) error {
	if ev.UserID == "" {
		return ErrInvalidOwner
	}
	const qInsert = "INSERT INTO events (user_id, name, venue, date, time) VALUES (?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, ev.UserID, ev.Name, ev.Venue, ev.Date, ev.Time)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ev.ID = uint64(id)

	const qSelect = "SELECT " + eventCols + " FROM events WHERE id = ?"
	got, err := scanEvent(r.db.QueryRowContext(ctx, qSelect, ev.ID))
	if err != nil {
		return err
	}
	*ev = *got
	return nil
}

// ListByOwner returns all events for the owner ordered by id.
func (r *EventRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Event, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + eventCols + " FROM events WHERE user_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches one event scoped to the owner.
func (r *EventRepo) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.Event, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + eventCols + " FROM events WHERE id = ? AND user_id = ?"
	ev, err := scanEvent(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

// Update fully replaces the event matching id and owner and returns the
// stored row, or sql.ErrNoRows when nothing matched.
func (r *EventRepo) Update(ctx context.Context, id uint64, ownerID string, ev *model.Event) (*model.Event, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = `UPDATE events
	           SET name = ?, venue = ?, date = ?, time = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, q, ev.Name, ev.Venue, ev.Date, ev.Time, id, ownerID); err != nil {
		return nil, err
	}
	const qSelect = "SELECT " + eventCols + " FROM events WHERE id = ? AND user_id = ?"
	got, err := scanEvent(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err // sql.ErrNoRows when not found / not owned
	}
	return got, nil
}

// Delete removes the event matching id and owner, returning a snapshot of the
// deleted row or sql.ErrNoRows when nothing matched.
func (r *EventRepo) Delete(ctx context.Context, id uint64, ownerID string) (*model.Event, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const qSelect = "SELECT " + eventCols + " FROM events WHERE id = ? AND user_id = ?"
	ev, err := scanEvent(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err
	}
	const qDelete = "DELETE FROM events WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, qDelete, id, ownerID); err != nil {
		return nil, err
	}
	return ev, nil
}
