package handler // handler defines http handlers

import (
    "context" // context carries request deadlines into stores and the event sink
    "errors"  // errors provides the sentinel used in getUserID
    "log"     // log reports best-effort event publishing failures
    "strconv" // strconv parses path identifiers
    "time"    // time stamps outgoing change events

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/hotel-venue-manager/internal/model" // model holds the row structs
    "github.com/iliyamo/hotel-venue-manager/internal/queue" // queue defines the change event payload
)

// RoomStore is the tenant-scoped persistence surface for rooms.  The
// repository implements it; tests inject a fake.  Toggle exists only here:
// rooms are the single resource with a two-valued status.
type RoomStore interface {
    ListByOwner(ctx context.Context, ownerID string) ([]*model.Room, error)
    Create(ctx context.Context, room *model.Room) error
    GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.Room, error)
    Update(ctx context.Context, id uint64, ownerID string, room *model.Room) (*model.Room, error)
    Toggle(ctx context.Context, id uint64, ownerID string) (*model.Room, error)
    Delete(ctx context.Context, id uint64, ownerID string) (*model.Room, error)
}

// MenuPhotoStore is the tenant-scoped persistence surface for photo menu items.
type MenuPhotoStore interface {
    ListByOwner(ctx context.Context, ownerID string) ([]*model.MenuPhotoItem, error)
    Create(ctx context.Context, item *model.MenuPhotoItem) error
    GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error)
    Update(ctx context.Context, id uint64, ownerID string, item *model.MenuPhotoItem) (*model.MenuPhotoItem, error)
    Delete(ctx context.Context, id uint64, ownerID string) (*model.MenuPhotoItem, error)
}

// MenuListStore is the tenant-scoped persistence surface for list menu items.
type MenuListStore interface {
    ListByOwner(ctx context.Context, ownerID string) ([]*model.MenuListItem, error)
    Create(ctx context.Context, item *model.MenuListItem) error
    GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.MenuListItem, error)
    Update(ctx context.Context, id uint64, ownerID string, item *model.MenuListItem) (*model.MenuListItem, error)
    Delete(ctx context.Context, id uint64, ownerID string) (*model.MenuListItem, error)
}

// EventStore is the tenant-scoped persistence surface for venue events.
type EventStore interface {
    ListByOwner(ctx context.Context, ownerID string) ([]*model.Event, error)
    Create(ctx context.Context, ev *model.Event) error
    GetByIDAndOwner(ctx context.Context, id uint64, ownerID string) (*model.Event, error)
    Update(ctx context.Context, id uint64, ownerID string, ev *model.Event) (*model.Event, error)
    Delete(ctx context.Context, id uint64, ownerID string) (*model.Event, error)
}

// ChangeSink receives record-change notifications after successful mutations.
// Publishing is best-effort; implementations log their own failures.
type ChangeSink interface {
    RecordChanged(ctx context.Context, ev queue.RecordChangedEvent) error
}

// APIHandler bundles the tenant-scoped stores behind the /api routes
type APIHandler struct {
    Rooms      RoomStore      // Rooms provides room persistence
    MenuPhotos MenuPhotoStore // MenuPhotos provides photo menu persistence
    MenuLists  MenuListStore  // MenuLists provides list menu persistence
    Events     EventStore     // Events provides venue event persistence
    Changes    ChangeSink     // Changes receives change events; nil disables publishing
}

// NewAPIHandler constructs a new APIHandler and panics if any store is nil.
// The change sink may be nil when no broker is configured.
func NewAPIHandler(rooms RoomStore, photos MenuPhotoStore, lists MenuListStore, events EventStore, changes ChangeSink) *APIHandler {
    if rooms == nil || photos == nil || lists == nil || events == nil { // check for nil dependencies
        panic("nil store passed to NewAPIHandler") // panic when a store is missing
    }
    return &APIHandler{
        Rooms:      rooms,
        MenuPhotos: photos,
        MenuLists:  lists,
        Events:     events,
        Changes:    changes,
    }
}

// getUserID extracts the identity resolved by the session middleware.  The
// identity is always a string here; anything else means the middleware did
// not run, which callers treat as unauthorized.
func getUserID(c echo.Context) (string, error) {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s, nil
    }
    return "", errors.New("no user identity in context")
}

// parseID parses a decimal row identifier from a path parameter.
func parseID(raw string) (uint64, error) {
    return strconv.ParseUint(raw, 10, 64)
}

// notifyChange publishes a record-change event for a completed mutation.
// Failures never affect the response; the publisher logs them and this
// helper adds the request route for context.
func (h *APIHandler) notifyChange(c echo.Context, resource, action string, id uint64, ownerID string) {
    if h.Changes == nil {
        return
    }
    ev := queue.RecordChangedEvent{
        Resource:   resource,
        Action:     action,
        RecordID:   id,
        UserID:     ownerID,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    if err := h.Changes.RecordChanged(c.Request().Context(), ev); err != nil {
        log.Printf("change event for %s %s dropped: %v", c.Request().Method, c.Path(), err)
    }
}
