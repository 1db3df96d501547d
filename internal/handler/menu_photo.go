package handler // photo menu API handlers; same shape as the room handlers

import (
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-venue-manager/internal/model"
)

// menuPhotoPayload is the request body for creating or replacing a photo
// menu item.  Description is optional and defaults to "".
type menuPhotoPayload struct {
    Name        string `json:"name"`
    Description string `json:"description"`
    PhotoURL    string `json:"photo_url"`
}

func (p *menuPhotoPayload) validate() string {
    p.Name = strings.TrimSpace(p.Name)
    p.PhotoURL = strings.TrimSpace(p.PhotoURL)
    if p.Name == "" {
        return "name is required"
    }
    if p.PhotoURL == "" {
        return "photo_url is required"
    }
    return ""
}

// ListMenuPhotos handles GET /api/menu_photo
func (h *APIHandler) ListMenuPhotos(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    items, err := h.MenuPhotos.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list menu items"})
    }
    return c.JSON(http.StatusOK, items)
}

// CreateMenuPhoto handles POST /api/menu_photo
func (h *APIHandler) CreateMenuPhoto(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    var body menuPhotoPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    item := &model.MenuPhotoItem{
        UserID:      ownerID,
        Name:        body.Name,
        Description: body.Description,
        PhotoURL:    body.PhotoURL,
    }
    if err := h.MenuPhotos.Create(c.Request().Context(), item); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
    }
    h.notifyChange(c, "menu_photo", "created", item.ID, ownerID)
    return c.JSON(http.StatusCreated, []*model.MenuPhotoItem{item})
}

// UpdateMenuPhoto handles PUT /api/menu_photo/:id
func (h *APIHandler) UpdateMenuPhoto(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body menuPhotoPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    item := &model.MenuPhotoItem{Name: body.Name, Description: body.Description, PhotoURL: body.PhotoURL}
    updated, err := h.MenuPhotos.Update(c.Request().Context(), id, ownerID, item)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.MenuPhotoItem{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update menu item"})
    }
    h.notifyChange(c, "menu_photo", "updated", id, ownerID)
    return c.JSON(http.StatusOK, []*model.MenuPhotoItem{updated})
}

// DeleteMenuPhoto handles DELETE /api/menu_photo/:id
func (h *APIHandler) DeleteMenuPhoto(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    item, err := h.MenuPhotos.Delete(c.Request().Context(), id, ownerID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.MenuPhotoItem{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete menu item"})
    }
    h.notifyChange(c, "menu_photo", "deleted", id, ownerID)
    return c.JSON(http.StatusOK, []*model.MenuPhotoItem{item})
}
