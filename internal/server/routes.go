package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	eventsH *handler.EventsHandler,
) {
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	eventsH.RegisterRoutes(e)
}
