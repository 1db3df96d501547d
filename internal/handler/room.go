package handler // handler package contains the room API handlers

import (
    "database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
    "errors"       // errors.Is distinguishes empty results from store failures
    "net/http"     // http provides status code constants
    "strconv"      // strconv parses string identifiers to numeric types
    "strings"      // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/iliyamo/hotel-venue-manager/internal/model"      // model holds the room row struct
    "github.com/iliyamo/hotel-venue-manager/internal/repository" // repository holds the not-found sentinels
)

// roomPayload is the request body for creating or replacing a room.  Status
// is optional on create and defaults to "available".
type roomPayload struct {
    Number string `json:"number"` // room number shown to staff
    Type   string `json:"type"`   // room category
    Status string `json:"status"` // "available" or "occupied"
}

// validate trims the payload in place and reports the first problem.  When
// requireStatus is false an empty status is filled with the default instead
// of rejected.  Validation runs before any store call.
func (p *roomPayload) validate(requireStatus bool) string {
    p.Number = strings.TrimSpace(p.Number)
    p.Type = strings.TrimSpace(p.Type)
    p.Status = strings.TrimSpace(p.Status)
    if p.Number == "" {
        return "number is required"
    }
    if p.Type == "" {
        return "type is required"
    }
    if p.Status == "" {
        if requireStatus {
            return "status is required"
        }
        p.Status = model.RoomAvailable
    }
    if p.Status != model.RoomAvailable && p.Status != model.RoomOccupied {
        return "status must be \"available\" or \"occupied\""
    }
    return ""
}

// ListRooms handles GET /api/rooms and returns all rooms owned by the session identity
func (h *APIHandler) ListRooms(c echo.Context) error { // begin ListRooms handler
    ownerID, err := getUserID(c) // extract the identity from context
    if err != nil {              // missing identity means the middleware did not run
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    rooms, err := h.Rooms.ListByOwner(c.Request().Context(), ownerID) // fetch rooms for this tenant only
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list rooms"})
    }
    return c.JSON(http.StatusOK, rooms) // the repository returns an empty slice for a fresh tenant
}

// CreateRoom handles POST /api/rooms and creates a room stamped with the session identity
func (h *APIHandler) CreateRoom(c echo.Context) error { // begin CreateRoom handler
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    var body roomPayload
    if err := c.Bind(&body); err != nil { // attempt to bind the request body
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(false); msg != "" { // reject malformed payloads before the store sees them
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    room := &model.Room{
        UserID: ownerID, // owner comes from the session, never the payload
        Number: body.Number,
        Type:   body.Type,
        Status: body.Status,
    }
    if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
    }
    h.notifyChange(c, "rooms", "created", room.ID, ownerID)
    return c.JSON(http.StatusCreated, []*model.Room{room}) // insert results come back as a one-element array
}

// UpdateRoom handles PUT /api/rooms/:id and fully replaces the room's fields
func (h *APIHandler) UpdateRoom(c echo.Context) error { // begin UpdateRoom handler
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64) // parse the room ID from the URL
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body roomPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(true); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    room := &model.Room{Number: body.Number, Type: body.Type, Status: body.Status}
    updated, err := h.Rooms.Update(c.Request().Context(), id, ownerID, room)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            // Absent and foreign-owned rows are indistinguishable here:
            // both come back as an empty result, not an error.
            return c.JSON(http.StatusOK, []*model.Room{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update room"})
    }
    h.notifyChange(c, "rooms", "updated", id, ownerID)
    return c.JSON(http.StatusOK, []*model.Room{updated})
}

// ToggleRoom handles PUT /api/rooms/:id/toggle and flips the room status
func (h *APIHandler) ToggleRoom(c echo.Context) error { // begin ToggleRoom handler
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    room, err := h.Rooms.Toggle(c.Request().Context(), id, ownerID)
    if err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) {
            // Toggle is the one operation that reports a miss explicitly.
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not toggle room"})
    }
    h.notifyChange(c, "rooms", "toggled", id, ownerID)
    return c.JSON(http.StatusOK, []*model.Room{room})
}

// DeleteRoom handles DELETE /api/rooms/:id
func (h *APIHandler) DeleteRoom(c echo.Context) error { // begin DeleteRoom handler
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    room, err := h.Rooms.Delete(c.Request().Context(), id, ownerID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            // Deleting a non-owned or non-existent id is a silent no-op.
            return c.JSON(http.StatusOK, []*model.Room{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete room"})
    }
    h.notifyChange(c, "rooms", "deleted", id, ownerID)
    return c.JSON(http.StatusOK, []*model.Room{room})
}
