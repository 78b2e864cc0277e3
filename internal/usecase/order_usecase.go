package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
	"app/internal/state"

	"go.uber.org/zap"
)

// 注文スライスの非同期操作は一覧取得の1つだけ
type OrderUsecase struct {
	repo   repo.OrderRepository
	store  *state.Store
	logger *zap.Logger
}

// DI
func NewOrderUsecase(repo repo.OrderRepository, store *state.Store, logger *zap.Logger) *OrderUsecase {
	return &OrderUsecase{repo: repo, store: store, logger: logger}
}

// skip/limitをStoreに反映（skipは0未満に丸め）してから取得する
func (u *OrderUsecase) FetchOrders(ctx context.Context, skip int, limit int) error {
	if limit < 1 || limit > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	u.store.SetOrderPagination(state.OrderPaginationPatch{Skip: &skip, Limit: &limit})

	seq, snap := u.store.BeginOrderOp()

	items, total, err := u.repo.List(ctx, snap.Pagination.Skip, snap.Pagination.Limit)
	if err != nil {
		u.logger.Error("fetch orders failed", zap.Error(err))
		u.store.FailOrderOp(seq, err.Error())
		return err
	}

	u.store.CompleteOrderList(seq, items, total)
	return nil
}
