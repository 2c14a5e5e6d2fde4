package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/mvolkov/inventory_app/internal/handlers"
	"github.com/mvolkov/inventory_app/internal/middleware/csrf"
	"github.com/mvolkov/inventory_app/internal/web"
)

type Deps struct {
	ItemHandler *handlers.ItemHandler
	Web         *web.Server
}

// Register wires the full route table. Routes are declared here once, at
// startup, for both the JSON and the HTML interface.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	api.GET("/items", d.ItemHandler.GetItems)
	api.POST("/items", d.ItemHandler.CreateItem)
	api.GET("/items/:id", d.ItemHandler.GetItem)
	api.PUT("/items/:id", d.ItemHandler.UpdateItem)
	api.DELETE("/items/:id", d.ItemHandler.DeleteItem)

	pages := e.Group("", csrf.Middleware(csrf.Config{}))

	pages.GET("/", d.Web.Index)
	pages.GET("/create", d.Web.CreateForm)
	pages.POST("/create", d.Web.CreateSubmit)
	pages.GET("/read/:id", d.Web.Detail)
	pages.GET("/update/:id", d.Web.UpdateForm)
	pages.POST("/update/:id", d.Web.UpdateSubmit)
	pages.GET("/delete/:id", d.Web.Delete)
}
