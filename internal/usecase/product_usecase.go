package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/state"

	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 商品スライスの非同期操作。pending→fulfilled/rejectedの遷移をStoreに記録する。
// 3操作はloading/errorを1組共有し、古い完了は順序番号で捨てられる
type ProductUsecase struct {
	repo   repo.ProductRepository
	store  *state.Store
	logger *zap.Logger
}

// DI
func NewProductUsecase(repo repo.ProductRepository, store *state.Store, logger *zap.Logger) *ProductUsecase {
	return &ProductUsecase{repo: repo, store: store, logger: logger}
}

// 一覧取得。フィルタとページングは呼び出し時点のStoreの値を使う
func (u *ProductUsecase) FetchProducts(ctx context.Context) error {
	snap := u.store.Products()
	if snap.Pagination.PageSize < 1 || snap.Pagination.PageSize > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	seq, snap := u.store.BeginProductOp()

	page := state.SelectProductPagination(snap)
	q := repo.ProductListQuery{
		Skip:     page.Skip,
		Limit:    page.Limit,
		Search:   snap.Filters.Search,
		Category: snap.Filters.Category,
	}

	items, total, err := u.repo.List(ctx, q)
	if err != nil {
		u.logger.Error("fetch products failed", zap.Error(err))
		u.store.FailProductOp(seq, err.Error())
		return err
	}

	u.store.CompleteProductList(seq, items, total)
	return nil
}

func (u *ProductUsecase) FetchProductByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	seq, _ := u.store.BeginProductOp()

	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		u.logger.Error("fetch product failed", zap.Int64("id", id), zap.Error(err))
		u.store.FailProductOp(seq, err.Error())
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return err
	}

	u.store.CompleteProductDetail(seq, p)
	return nil
}

// 部分更新。成功したらサーバーのレスポンスを正として一覧とcurrentを差し替える
// （isActiveだけはクライアント側の値が保たれる）
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in repo.UpdateProductInput) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in == (repo.UpdateProductInput{}) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.Price != nil && *in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	seq, _ := u.store.BeginProductOp()

	p, err := u.repo.Update(ctx, id, in)
	if err != nil {
		u.logger.Error("update product failed", zap.Int64("id", id), zap.Error(err))
		u.store.FailProductOp(seq, err.Error())
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, err
	}

	return u.store.CompleteProductUpdate(seq, p), nil
}

// フィルタパネル用のカテゴリ一覧。Storeは経由しない読み取り専用の呼び出し
func (u *ProductUsecase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := u.repo.Categories(ctx)
	if err != nil {
		u.logger.Error("fetch categories failed", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
