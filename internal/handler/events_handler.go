package handler

import (
	"fmt"
	"net/http"

	"app/internal/state"

	"github.com/labstack/echo/v4"
)

// Storeの変更通知をSSEで流す。画面側の再描画トリガー用
type EventsHandler struct {
	store *state.Store
}

func NewEventsHandler(store *state.Store) *EventsHandler {
	return &EventsHandler{store: store}
}

func (h *EventsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/events", h.stream)
}

func (h *EventsHandler) stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch := h.store.Subscribe()
	defer h.store.Unsubscribe(ch)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			if _, err := fmt.Fprint(res, "data: changed\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
