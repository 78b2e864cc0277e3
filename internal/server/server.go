package server

import (
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// echoを組み立てて返す。起動はmainが行う
func New(
	logger *zap.Logger,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
	eventsH *handler.EventsHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, productH, orderH, eventsH)
	return e
}
