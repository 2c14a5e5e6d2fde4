package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mvolkov/inventory_app/internal/events"
	"github.com/mvolkov/inventory_app/internal/logging"
	"github.com/mvolkov/inventory_app/internal/store"
	"github.com/mvolkov/inventory_app/internal/validation"
)

// ItemHandler serves the JSON item resource.
type ItemHandler struct {
	Store    *store.ItemStore
	Producer *events.Producer
}

// itemRequest uses pointer fields so a missing field can be told apart from a
// zero value, which PUT needs for its partial-update semantics.
type itemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, map[string]string{"error": err.Error()})
}

func validationResponse(c echo.Context, errs validation.FieldErrors) error {
	return c.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
}

func (h *ItemHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, fmt.Sprint(event["itemID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	items, err := h.Store.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	item, err := h.Store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, store.ErrNotFound)
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	in := validation.Input{
		Quantity: req.Quantity,
		Price:    req.Price,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	fields, errs := validation.Check(in)
	if errs != nil {
		return validationResponse(c, errs)
	}

	item := fields.Item()
	if err := h.Store.Create(c.Request().Context(), &item); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":   "item_created",
		"itemID": item.ID,
		"name":   item.Name,
	})

	return c.JSON(http.StatusCreated, item)
}

// UpdateItem replaces only the fields present in the body, keeping the rest of
// the stored record, then validates the merged result.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	item, err := h.Store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, store.ErrNotFound)
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	in := validation.Input{
		Name:        item.Name,
		Description: item.Description,
		Quantity:    &item.Quantity,
		Price:       &item.Price,
	}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Quantity != nil {
		in.Quantity = req.Quantity
	}
	if req.Price != nil {
		in.Price = req.Price
	}

	fields, errs := validation.Check(in)
	if errs != nil {
		return validationResponse(c, errs)
	}

	updated, err := h.Store.Update(c.Request().Context(), id, fields.Name, fields.Description, fields.Quantity, fields.Price)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":   "item_updated",
		"itemID": updated.ID,
		"name":   updated.Name,
	})

	return c.JSON(http.StatusOK, updated)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, store.ErrNotFound)
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{
		"type":   "item_deleted",
		"itemID": id,
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
