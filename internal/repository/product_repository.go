package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧取得の条件。SearchとCategoryは排他で、両方あればSearch優先
type ProductListQuery struct {
	Skip     int
	Limit    int
	Search   string
	Category string
}

// 部分更新の入力。nilのフィールドは送らない
type UpdateProductInput struct {
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Price              *float64 `json:"price,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	Stock              *int64   `json:"stock,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Category           *string  `json:"category,omitempty"`
}

// リモートカタログAPIの商品リソースとの約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// サーバーのレスポンスが返すフィールドは全て新しい正とする
	Update(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error)

	// カテゴリ一覧（フィルタパネル用）
	Categories(ctx context.Context) ([]string, error)
}
