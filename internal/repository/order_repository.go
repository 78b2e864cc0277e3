package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文一覧。実体はリモートの/cartsで、取得時にOrderへ射影される
type OrderRepository interface {
	List(ctx context.Context, skip int, limit int) ([]model.Order, int64, error)
}
