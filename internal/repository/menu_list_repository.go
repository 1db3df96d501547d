// Repository methods for text-based menu items (title, description, price).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/hotel-venue-manager/internal/model"
)

// ErrMenuListNotFound is returned when a list menu item cannot be found under
// the given owner.
var ErrMenuListNotFound = errors.New("menu list item not found")

// MenuListRepo encapsulates all database queries related to the menu_list
// table.
type MenuListRepo struct {
	db *sql.DB
}

// NewMenuListRepo constructs a MenuListRepo with the provided DB handle.
func NewMenuListRepo(db *sql.DB) *MenuListRepo {
	return &MenuListRepo{db: db}
}

const menuListCols = "id, user_id, title, description, price, created_at, updated_at"

func scanMenuList(row interface{ Scan(...any) error }) (*model.MenuListItem, error) {
	m := new(model.MenuListItem)
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Description, &m.Price, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new list menu item stamped with the owner identity and
// re-reads the row to populate generated fields.
func (r *MenuListRepo) Create(ctx context.Context, item *model.MenuListItem) error {
	if item.UserID == "" {
		return ErrInvalidOwner
	}
	const qInsert = "INSERT INTO menu_list (user_id, title, description, price) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, item.UserID, item.Title, item.Description, item.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	item.ID = uint64(id)

	const qSelect = "SELECT " + menuListCols + " FROM menu_list WHERE id = ?"
	got, err := scanMenuList(r.db.QueryRowContext(ctx, qSelect, item.ID))
	if err != nil {
		return err
	}
	*item = *got
	return nil
}

// ListByOwner returns all list menu items for the owner ordered by id.
func (r *MenuListRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.MenuListItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + menuListCols + " FROM menu_list WHERE user_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.MenuListItem{}
	for rows.Next() {
		item, err := scanMenuList(rows)
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

// GetByIDAndOwner fetches one list menu item scoped to the owner.
func (r *MenuListRepo) GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.MenuListItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = "SELECT " + menuListCols + " FROM menu_list WHERE id = ? AND user_id = ?"
	item, err := scanMenuList(r.db.QueryRowContext(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuListNotFound
		}
		return nil, err
	}
	return item, nil
}

// Update fully replaces the item matching id and owner and returns the stored
// row, or sql.ErrNoRows when nothing matched.
func (r *MenuListRepo) Update(ctx context.Context, id uint64, ownerID string, item *model.MenuListItem) (*model.MenuListItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const q = `UPDATE menu_list
	           SET title = ?, description = ?, price = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, q, item.Title, item.Description, item.Price, id, ownerID); err != nil {
		return nil, err
	}
	const qSelect = "SELECT " + menuListCols + " FROM menu_list WHERE id = ? AND user_id = ?"
	got, err := scanMenuList(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err // sql.ErrNoRows when not found / not owned
	}
	return got, nil
}

// Delete removes the item matching id and owner, returning a snapshot of the
// deleted row or sql.ErrNoRows when nothing matched.
func (r *MenuListRepo) Delete(ctx context.Context, id uint64, ownerID string) (*model.MenuListItem, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwner
	}
	const qSelect = "SELECT " + menuListCols + " FROM menu_list WHERE id = ? AND user_id = ?"
	item, err := scanMenuList(r.db.QueryRowContext(ctx, qSelect, id, ownerID))
	if err != nil {
		return nil, err
	}
	const qDelete = "DELETE FROM menu_list WHERE id = ? AND user_id = ?"
	if _, err := r.db.ExecContext(ctx, qDelete, id, ownerID); err != nil {
		return nil, err
	}
	return item, nil
}
