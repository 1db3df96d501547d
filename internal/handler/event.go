package handler // venue event API handlers

import (
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-venue-manager/internal/model"
)

// eventPayload is the request body for creating or replacing a venue event.
// All four fields are required; date and time stay as free-form strings.
type eventPayload struct {
    Name  string `json:"name"`
    Venue string `json:"venue"`
    Date  string `json:"date"`
    Time  string `json:"time"`
}

func (p *eventPayload) validate() string {
    p.Name = strings.TrimSpace(p.Name)
    p.Venue = strings.TrimSpace(p.Venue)
    p.Date = strings.TrimSpace(p.Date)
    p.Time = strings.TrimSpace(p.Time)
    switch {
    case p.Name == "":
        return "name is required"
    case p.Venue == "":
        return "venue is required"
    case p.Date == "":
        return "date is required"
    case p.Time == "":
        return "time is required"
    }
    return ""
}

// ListEvents handles GET /api/events
func (h *APIHandler) ListEvents(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    events, err := h.Events.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list events"})
    }
    return c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/events
func (h *APIHandler) CreateEvent(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    var body eventPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ev := &model.Event{
        UserID: ownerID,
        Name:   body.Name,
        Venue:  body.Venue,
        Date:   body.Date,
        Time:   body.Time,
    }
    if err := h.Events.Create(c.Request().Context(), ev); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
    }
    h.notifyChange(c, "events", "created", ev.ID, ownerID)
    return c.JSON(http.StatusCreated, []*model.Event{ev})
}

// UpdateEvent handles PUT /api/events/:id
func (h *APIHandler) UpdateEvent(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body eventPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ev := &model.Event{Name: body.Name, Venue: body.Venue, Date: body.Date, Time: body.Time}
    updated, err := h.Events.Update(c.Request().Context(), id, ownerID, ev)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.Event{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update event"})
    }
    h.notifyChange(c, "events", "updated", id, ownerID)
    return c.JSON(http.StatusOK, []*model.Event{updated})
}

// DeleteEvent handles DELETE /api/events/:id
func (h *APIHandler) DeleteEvent(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ev, err := h.Events.Delete(c.Request().Context(), id, ownerID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.Event{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete event"})
    }
    h.notifyChange(c, "events", "deleted", id, ownerID)
    return c.JSON(http.StatusOK, []*model.Event{ev})
}
