package web

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
	"github.com/mvolkov/inventory_app/internal/middleware/csrf"
	"github.com/mvolkov/inventory_app/internal/store"
	"github.com/mvolkov/inventory_app/internal/validation"
)

// Server holds the dependencies of the server-rendered pages.
type Server struct {
	Store    *store.ItemStore
	Producer *events.Producer
}

func (s *Server) page(c echo.Context, title string) PageData {
	token, _ := c.Get(csrf.ContextKey).(string)
	return PageData{
		Title:     title,
		Flash:     popFlash(c),
		CSRFToken: token,
	}
}

func (s *Server) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(ctx, fmt.Sprint(event["itemID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (s *Server) notFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", s.page(c, "Not found"))
}

// serverError logs the failure and renders an error page instead of leaking a
// JSON error body onto the server-rendered interface.
func (s *Server) serverError(c echo.Context, err error) error {
	logging.FromContext(c.Request().Context()).Error("request failed", "error", err)
	return c.Render(http.StatusInternalServerError, "error.html", s.page(c, "Something went wrong"))
}

// Index handles GET /.
func (s *Server) Index(c echo.Context) error {
	items, err := s.Store.List(c.Request().Context())
	if err != nil {
		return s.serverError(c, err)
	}
	return c.Render(http.StatusOK, "index.html", listData{
		PageData: s.page(c, "Items"),
		Items:    items,
	})
}

// CreateForm handles GET /create.
func (s *Server) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "item_form.html", formData{
		PageData: s.page(c, "Add item"),
	})
}

// CreateSubmit handles POST /create. On validation failure the form is
// re-rendered with the submitted values echoed back.
func (s *Server) CreateSubmit(c echo.Context) error {
	form := FormData{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
		Price:       c.FormValue("price"),
	}

	in := validation.FromForm(form.Name, form.Description, form.Quantity, form.Price)
	fields, errs := validation.Check(in)
	if errs != nil {
		return c.Render(http.StatusOK, "item_form.html", formData{
			PageData: s.page(c, "Add item"),
			Form:     form,
			Errors:   errs,
		})
	}

	item := fields.Item()
	if err := s.Store.Create(c.Request().Context(), &item); err != nil {
		return s.serverError(c, err)
	}

	s.publish(c, map[string]any{
		"type":   "item_created",
		"itemID": item.ID,
		"name":   item.Name,
	})

	setFlash(c, "Item created successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Detail handles GET /read/:id.
func (s *Server) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.notFound(c)
	}

	item, err := s.Store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.notFound(c)
		}
		return s.serverError(c, err)
	}

	return c.Render(http.StatusOK, "item_detail.html", detailData{
		PageData: s.page(c, item.Name),
		Item:     item,
	})
}

// UpdateForm handles GET /update/:id, rendering the form pre-populated with
// the item's current values.
func (s *Server) UpdateForm(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.notFound(c)
	}

	item, err := s.Store.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.notFound(c)
		}
		return s.serverError(c, err)
	}

	return c.Render(http.StatusOK, "item_form.html", formData{
		PageData: s.page(c, "Edit item"),
		Form: FormData{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    strconv.Itoa(item.Quantity),
			Price:       strconv.FormatFloat(item.Price, 'f', -1, 64),
		},
	})
}

// UpdateSubmit handles POST /update/:id, overwriting all four mutable fields.
func (s *Server) UpdateSubmit(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.notFound(c)
	}

	if _, err := s.Store.Get(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.notFound(c)
		}
		return s.serverError(c, err)
	}

	form := FormData{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
		Price:       c.FormValue("price"),
	}

	in := validation.FromForm(form.Name, form.Description, form.Quantity, form.Price)
	fields, errs := validation.Check(in)
	if errs != nil {
		return c.Render(http.StatusOK, "item_form.html", formData{
			PageData: s.page(c, "Edit item"),
			Form:     form,
			Errors:   errs,
		})
	}

	item, err := s.Store.Update(c.Request().Context(), id, fields.Name, fields.Description, fields.Quantity, fields.Price)
	if err != nil {
		return s.serverError(c, err)
	}

	s.publish(c, map[string]any{
		"type":   "item_updated",
		"itemID": item.ID,
		"name":   item.Name,
	})

	setFlash(c, "Item updated successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles GET /delete/:id. Deletion is unconditional and immediate.
func (s *Server) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.notFound(c)
	}

	if err := s.Store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.notFound(c)
		}
		return s.serverError(c, err)
	}

	s.publish(c, map[string]any{
		"type":   "item_deleted",
		"itemID": id,
	})

	setFlash(c, "Item deleted successfully!")
	return c.Redirect(http.StatusSeeOther, "/")
}
