package handler

import (
	"net/http"
	"strconv"

	"app/internal/debounce"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/state"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 商品ページのビュー。スライスの形（items/エラー/ページング）をそのまま返す
type ProductListView struct {
	Items      []model.Product `json:"items"`
	Total      int64           `json:"total"`
	Skip       int             `json:"skip"`
	Limit      int             `json:"limit"`
	Categories []string        `json:"categories"`
	Loading    bool            `json:"loading"`
	Error      string          `json:"error,omitempty"`
}

type ProductDetailView struct {
	Product *model.Product `json:"product"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

// /products の画面API
type ProductHandler struct {
	uc     *usecase.ProductUsecase
	store  *state.Store
	search *debounce.Debouncer
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, store *state.Store, search *debounce.Debouncer) *ProductHandler {
	return &ProductHandler{uc: uc, store: store, search: search}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.POST("/products/search", h.searchInput)
	e.GET("/products/:id", h.detail)
	e.DELETE("/products/current", h.clearCurrent)
	e.PUT("/products/:id", h.update)
	e.PATCH("/products/:id/active", h.setActive)
	e.GET("/categories", h.categories)
}

// クエリパラメータをフィルタ/ページングとしてStoreへ反映してから取得する。
// パラメータ省略時はStoreの現在値のまま
func (h *ProductHandler) list(c echo.Context) error {
	pagination := state.ProductPaginationPatch{}
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		pagination.Page = &p
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		// 不正なlimitはStoreに入れる前に弾く（入れると以後のリクエストまで壊れる）
		if err != nil || l < 1 || l > 100 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		pagination.Limit = &l
	}

	filters := state.ProductFiltersPatch{}
	if v, ok := queryParamSet(c, "q"); ok {
		filters.Search = &v
	}
	if v, ok := queryParamSet(c, "category"); ok {
		filters.Category = &v
	}

	snap := h.store.Products()
	priceRange := snap.Filters.PriceRange
	rangeChanged := false
	if v := c.QueryParam("min_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		priceRange[0] = x
		rangeChanged = true
	}
	if v := c.QueryParam("max_price"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		}
		priceRange[1] = x
		rangeChanged = true
	}
	if rangeChanged {
		if priceRange[0] > priceRange[1] {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "min_price must be <= max_price"})
		}
		filters.PriceRange = &priceRange
	}

	h.store.SetProductFilters(filters)
	h.store.SetProductPagination(pagination)

	if err := h.uc.FetchProducts(c.Request().Context()); err != nil {
		if _, ok := usecase.AsHTTPError(err); ok {
			return writeError(c, err)
		}
		// リモート障害はスライスのerrorとして画面に出す
	}

	return c.JSON(http.StatusOK, h.listView())
}

// 検索語の入力。静止時間が過ぎたらフィルタ反映と再取得が1回だけ走る
func (h *ProductHandler) searchInput(c echo.Context) error {
	var body struct {
		Q string `json:"q"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.search.Set(body.Q)
	return c.JSON(http.StatusAccepted, echo.Map{"accepted": true})
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.FetchProductByID(c.Request().Context(), id); err != nil {
		if _, ok := usecase.AsHTTPError(err); ok {
			return writeError(c, err)
		}
	}

	snap := h.store.Products()
	return c.JSON(http.StatusOK, ProductDetailView{
		Product: snap.CurrentProduct,
		Loading: snap.Loading,
		Error:   snap.Error,
	})
}

// 詳細画面を離れたときに呼ばれる
func (h *ProductHandler) clearCurrent(c echo.Context) error {
	h.store.ClearCurrentProduct()
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var in repo.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

// isActiveのローカル切り替え。リモートには一切つながない
func (h *ProductHandler) setActive(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.Bind(&body); err != nil || body.Active == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "active is required"})
	}

	h.store.SetActiveStatus(id, *body.Active)
	return c.JSON(http.StatusOK, echo.Map{"id": id, "active": *body.Active})
}

func (h *ProductHandler) categories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *ProductHandler) listView() ProductListView {
	snap := h.store.Products()
	page := state.SelectProductPagination(snap)
	return ProductListView{
		Items:      state.SelectFilteredProducts(snap),
		Total:      page.Total,
		Skip:       page.Skip,
		Limit:      page.Limit,
		Categories: state.SelectAllCategories(snap),
		Loading:    snap.Loading,
		Error:      snap.Error,
	}
}

// 空文字の指定（フィルタ解除）と未指定を区別する
func queryParamSet(c echo.Context, name string) (string, bool) {
	values, ok := c.QueryParams()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
