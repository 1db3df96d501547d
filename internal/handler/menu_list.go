package handler // list menu API handlers

import (
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-venue-manager/internal/model"
)

// menuListPayload is the request body for creating or replacing a list menu
// item.  Price is a pointer so a missing price can be told apart from an
// explicit zero; zero is a valid price, absence is not.
type menuListPayload struct {
    Title       string   `json:"title"`
    Description string   `json:"description"`
    Price       *float64 `json:"price"`
}

func (p *menuListPayload) validate() string {
    p.Title = strings.TrimSpace(p.Title)
    if p.Title == "" {
        return "title is required"
    }
    if p.Price == nil {
        return "price is required"
    }
    if *p.Price < 0 {
        return "price must be non-negative"
    }
    return ""
}

// ListMenuItems handles GET /api/menu_list
func (h *APIHandler) ListMenuItems(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    items, err := h.MenuLists.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list menu items"})
    }
    return c.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/menu_list
func (h *APIHandler) CreateMenuItem(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    var body menuListPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    item := &model.MenuListItem{
        UserID:      ownerID,
        Title:       body.Title,
        Description: body.Description,
        Price:       *body.Price,
    }
    if err := h.MenuLists.Create(c.Request().Context(), item); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
    }
    h.notifyChange(c, "menu_list", "created", item.ID, ownerID)
    return c.JSON(http.StatusCreated, []*model.MenuListItem{item})
}

// UpdateMenuItem handles PUT /api/menu_list/:id
func (h *APIHandler) UpdateMenuItem(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body menuListPayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := body.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    item := &model.MenuListItem{Title: body.Title, Description: body.Description, Price: *body.Price}
    updated, err := h.MenuLists.Update(c.Request().Context(), id, ownerID, item)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.MenuListItem{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update menu item"})
    }
    h.notifyChange(c, "menu_list", "updated", id, ownerID)
    return c.JSON(http.StatusOK, []*model.MenuListItem{updated})
}

// DeleteMenuItem handles DELETE /api/menu_list/:id
func (h *APIHandler) DeleteMenuItem(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    item, err := h.MenuLists.Delete(c.Request().Context(), id, ownerID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusOK, []*model.MenuListItem{})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete menu item"})
    }
    h.notifyChange(c, "menu_list", "deleted", id, ownerID)
    return c.JSON(http.StatusOK, []*model.MenuListItem{item})
}
