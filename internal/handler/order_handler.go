package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/state"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderListView struct {
	Items   []model.Order `json:"items"`
	Total   int64         `json:"total"`
	Skip    int           `json:"skip"`
	Limit   int           `json:"limit"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

// /orders の画面API
type OrderHandler struct {
	uc    *usecase.OrderUsecase
	store *state.Store
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, store *state.Store) *OrderHandler {
	return &OrderHandler{uc: uc, store: store}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.list)
}

func (h *OrderHandler) list(c echo.Context) error {
	snap := h.store.Orders()

	skip := snap.Pagination.Skip
	if v := c.QueryParam("skip"); v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip"})
		}
		skip = x
	}

	limit := snap.Pagination.Limit
	if v := c.QueryParam("limit"); v != "" {
		x, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = x
	}

	if err := h.uc.FetchOrders(c.Request().Context(), skip, limit); err != nil {
		if _, ok := usecase.AsHTTPError(err); ok {
			return writeError(c, err)
		}
		// リモート障害はスライスのerrorとして画面に出す
	}

	snap = h.store.Orders()
	return c.JSON(http.StatusOK, OrderListView{
		Items:   snap.List,
		Total:   snap.Total,
		Skip:    snap.Pagination.Skip,
		Limit:   snap.Pagination.Limit,
		Loading: snap.Loading,
		Error:   snap.Error,
	})
}
