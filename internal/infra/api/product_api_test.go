package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) (*ProductAPIRepository, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewProductAPIRepository(NewClient(srv.URL, zap.NewNop())), srv
}

func writeProducts(w http.ResponseWriter, items []model.Product, total int64) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"products": items,
		"total":    total,
		"skip":     0,
		"limit":    len(items),
	})
}

func TestProductAPIRepository_List_Unscoped(t *testing.T) {
	var gotPath, gotQuery string
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotQuery = req.URL.RawQuery
		writeProducts(w, []model.Product{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, 100)
	})

	items, total, err := r.List(context.Background(), repo.ProductListQuery{Skip: 20, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "/products", gotPath)
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "skip=20")
	assert.Len(t, items, 2)
	assert.Equal(t, int64(100), total)
}

// 残り件数がlimit未満なら、リモートが返したその件数をそのまま返す
func TestProductAPIRepository_List_LastPage(t *testing.T) {
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		// total=12, skip=10, limit=10 → 残り2件
		writeProducts(w, []model.Product{{ID: 11}, {ID: 12}}, 12)
	})

	items, total, err := r.List(context.Background(), repo.ProductListQuery{Skip: 10, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(12), total)
}

func TestProductAPIRepository_List_SearchRoute(t *testing.T) {
	var gotPath string
	var gotQ string
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		gotQ = req.URL.Query().Get("q")
		writeProducts(w, nil, 0)
	})

	_, _, err := r.List(context.Background(), repo.ProductListQuery{Limit: 10, Search: "phone"})
	require.NoError(t, err)
	assert.Equal(t, "/products/search", gotPath)
	assert.Equal(t, "phone", gotQ)
}

func TestProductAPIRepository_List_CategoryRoute(t *testing.T) {
	var gotPath string
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		writeProducts(w, nil, 0)
	})

	_, _, err := r.List(context.Background(), repo.ProductListQuery{Limit: 10, Category: "laptops"})
	require.NoError(t, err)
	assert.Equal(t, "/products/category/laptops", gotPath)
}

// searchとcategoryが両方あるときはsearchが勝つ
func TestProductAPIRepository_List_SearchWinsOverCategory(t *testing.T) {
	var gotPath string
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		writeProducts(w, nil, 0)
	})

	_, _, err := r.List(context.Background(), repo.ProductListQuery{Limit: 10, Search: "phone", Category: "laptops"})
	require.NoError(t, err)
	assert.Equal(t, "/products/search", gotPath)
}

func TestProductAPIRepository_FindByID_NotFound(t *testing.T) {
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product with id '999' not found"})
	})

	_, err := r.FindByID(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.Equal(t, "Product with id '999' not found", err.Error())
}

// サーバーがmessageを返さないときは汎用文言に落ちる
func TestProductAPIRepository_FindByID_GenericError(t *testing.T) {
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := r.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "API request failed", err.Error())
}

// 接続不能でも同じ形のエラーに潰れる
func TestProductAPIRepository_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	r := NewProductAPIRepository(NewClient(srv.URL, zap.NewNop()))

	_, _, err := r.List(context.Background(), repo.ProductListQuery{Limit: 10})
	require.Error(t, err)

	var re *RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "API request failed", re.Message)
}

func TestProductAPIRepository_Update_SendsOnlySetFields(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		gotMethod = req.Method
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(model.Product{ID: 5, Title: "Phone", Stock: 3})
	})

	stock := int64(3)
	p, err := r.Update(context.Background(), 5, repo.UpdateProductInput{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, map[string]any{"stock": float64(3)}, gotBody)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, int64(3), p.Stock)
}

func TestProductAPIRepository_Categories(t *testing.T) {
	r, _ := newTestRepo(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/products/categories", req.URL.Path)
		_ = json.NewEncoder(w).Encode([]string{"laptops", "smartphones"})
	})

	categories, err := r.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"laptops", "smartphones"}, categories)
}
