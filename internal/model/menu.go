package model

import "time"

// MenuPhotoItem represents a row in the `menu_photo` table: a menu entry
// backed by an uploaded photo.  Description defaults to the empty string when
// the client omits it.  Ownership works exactly as for Room.
type MenuPhotoItem struct {
    ID          uint64    `json:"id"`          // menu_photo.id
    UserID      string    `json:"user_id"`     // menu_photo.user_id
    Name        string    `json:"name"`        // menu_photo.name
    Description string    `json:"description"` // menu_photo.description
    PhotoURL    string    `json:"photo_url"`   // menu_photo.photo_url
    CreatedAt   time.Time `json:"created_at"`  // menu_photo.created_at
    UpdatedAt   time.Time `json:"updated_at"`  // menu_photo.updated_at
}

// MenuListItem represents a row in the `menu_list` table: a text-only menu
// entry with a price.  Price is validated non-negative before it ever reaches
// the repository.
type MenuListItem struct {
    ID          uint64    `json:"id"`          // menu_list.id
    UserID      string    `json:"user_id"`     // menu_list.user_id
    Title       string    `json:"title"`       // menu_list.title
    Description string    `json:"description"` // menu_list.description
    Price       float64   `json:"price"`       // menu_list.price
    CreatedAt   time.Time `json:"created_at"`  // menu_list.created_at
    UpdatedAt   time.Time `json:"updated_at"`  // menu_list.updated_at
}
