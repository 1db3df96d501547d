package handler // page handlers: static entry/dashboard/manage pages and the edit lookup

import (
    "errors"
    "net/http"
    "path/filepath"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-venue-manager/internal/repository"
)

// PageHandler serves the operator-facing pages.  The pages themselves are
// static files; all data on them is fetched by the browser through the /api
// routes.  Protected pages sit behind the redirecting session middleware, so
// an expired session lands back on the entry page instead of a 401.
type PageHandler struct {
    WebDir     string
    Rooms      RoomStore
    MenuPhotos MenuPhotoStore
    MenuLists  MenuListStore
    Events     EventStore
}

func NewPageHandler(webDir string, rooms RoomStore, photos MenuPhotoStore, lists MenuListStore, events EventStore) *PageHandler {
    return &PageHandler{WebDir: webDir, Rooms: rooms, MenuPhotos: photos, MenuLists: lists, Events: events}
}

// Entry handles GET / and serves the login/signup page.
func (h *PageHandler) Entry(c echo.Context) error {
    return c.File(filepath.Join(h.WebDir, "auth.html"))
}

// Dashboard handles GET /dashboard.
func (h *PageHandler) Dashboard(c echo.Context) error {
    return c.File(filepath.Join(h.WebDir, "dashboard.html"))
}

// Manage handles GET /manage.
func (h *PageHandler) Manage(c echo.Context) error {
    return c.File(filepath.Join(h.WebDir, "manage.html"))
}

// Edit handles GET /edit/:type/:id and returns the record the edit form
// should be pre-filled with.  The lookup is tenant-scoped like every other
// read: another tenant's id presents as not found.
func (h *PageHandler) Edit(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.Redirect(http.StatusSeeOther, "/")
    }
    id, err := parseID(c.Param("id"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
    }

    ctx := c.Request().Context()
    var (
        item     any
        notFound error
    )
    switch c.Param("type") {
    case "room":
        item, err = h.Rooms.GetByIDAndOwner(ctx, id, ownerID)
        notFound = repository.ErrRoomNotFound
    case "menu-photo":
        item, err = h.MenuPhotos.GetByIDAndOwner(ctx, id, ownerID)
        notFound = repository.ErrMenuPhotoNotFound
    case "menu-list":
        item, err = h.MenuLists.GetByIDAndOwner(ctx, id, ownerID)
        notFound = repository.ErrMenuListNotFound
    case "event":
        item, err = h.Events.GetByIDAndOwner(ctx, id, ownerID)
        notFound = repository.ErrEventNotFound
    default:
        return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
    }
    if err != nil {
        if errors.Is(err, notFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load item"})
    }
    return c.JSON(http.StatusOK, item)
}
