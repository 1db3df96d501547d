// Repository methods for photo-based menu items.  Same scoping contract as
// rooms: every statement filters on id and owner together.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
)

// ErrMenuPhotoNotFound is returned when a photo menu item cannot be found
// under the given owner.
var ErrMenuPhotoNotFound = errors.New("menu photo item not found")

// MenuPhotoRepo encapsulates all database queries related to the menu_photo
// table.
type MenuPhotoRepo struct {
	db *sql.DB
}

// NewMenuPhotoRepo constructs a MenuPhotoRepo with the provided DB handle.
func NewMenuPhotoRepo(db *sql.DB) *MenuPhotoRepo {
	return &MenuPhotoRepo{db: db}
}

const menuPhotoCols = "id, user_id, name, description, photo_url, created_at, updated_at"

func scanMenuPhoto(row interface{ Scan(...any) error }) (*model.MenuPhotoItem, error) {
	m := new(model.MenuPhotoItem)
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.PhotoURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new photo menu item stamped with the owner identity and
// re-reads the row to populate generated fields.
func (r *MenuPhotoRepo) Create(ctx context.Context, item *model.MenuPhotoItem) error {
	if item.UserID == "" {
		return ErrInvalidOwner
	}
	const qInsert = "INSERT INTO menu_photo (user_id, name, description, photo_url) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, item.UserID, item.Name, item.Description, item.PhotoURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = uint64(id)

	const qSelect = "SELECT " + menuPhotoCols + " FROM menu_photo WHERE id = ?"
	got, err := scanMenuPhoto(r.db.QueryRowContext(ctx, qSelect, item.ID))
	if err != nil {
		return err
	}
	*item = *got
	return nil
}

// ListByOwner returns all photo menu items for the owner ordered by id.
func (r *MenuPhotoRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.MenuPhotoItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + menuPhotoCols + " FROM menu_photo WHERE user_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.MenuPhotoItem{}
	for rows.Next() {
		item, err := scanMenuPhoto(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches one photo menu item scoped to the owner, returning
// ErrMenuPhotoNotFound for absent and foreign-owned rows alike.
func (r *MenuPhotoRepo) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + menuPhotoCols + " FROM menu_photo WHERE id = ? AND user_id = ?"
	item, err := scanMenuPhoto(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuPhotoNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update fully replaces the item matching id and owner and returns the stored
// row, or sql.ErrNoRows when nothing matched.
func (r *MenuPhotoRepo) Update(ctx context.Context, id uint64, ownerID string, item *model.MenuPhotoItem) (*model.MenuPhotoItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = `UPDATE menu_photo
	           SET name = ?, description = ?, photo_url = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, q, item.Name, item.Description, item.PhotoURL, id, ownerID); err != nil {
		return nil, err
	}
	const qSelect = "SELECT " + menuPhotoCols + " FROM menu_photo WHERE id = ? AND user_id = ?"
	got, err := scanMenuPhoto(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err // sql.ErrNoRows when not found / not owned
	}
	return got, nil
}

// Delete removes the item matching id and owner, returning a snapshot of the
// deleted row or sql.ErrNoRows when nothing matched.
func (r *MenuPhotoRepo) Delete(ctx context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const qSelect = "SELECT " + menuPhotoCols + " FROM menu_photo WHERE id = ? AND user_id = ?"
	item, err := scanMenuPhoto(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err
	}
	const qDelete = "DELETE FROM menu_photo WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, qDelete, id, ownerID); err != nil {
		return nil, err
	}
	return item, nil
}
