package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductAPIRepository struct {
	client *Client
}

// DI
func NewProductAPIRepository(client *Client) *ProductAPIRepository {
	return &ProductAPIRepository{client: client}
}

type productsResponse struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Skip     int             `json:"skip"`
	Limit    int             `json:"limit"`
}

// 検索があれば/products/search、無ければカテゴリ、どちらも無ければ/products。
// SearchとCategoryが両方あるときはSearchが勝つ
func (r *ProductAPIRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	path := "/products"
	query := url.Values{}

	if q.Search != "" {
		path = "/products/search"
		query.Set("q", q.Search)
	} else if q.Category != "" {
		path = "/products/category/" + url.PathEscape(q.Category)
	}

	query.Set("limit", strconv.Itoa(q.Limit))
	query.Set("skip", strconv.Itoa(q.Skip))

	var res productsResponse
	if err := r.client.GetJSON(ctx, path, query, &res); err != nil {
		return nil, 0, err
	}
	return res.Products, res.Total, nil
}

func (r *ProductAPIRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	if err := r.client.GetJSON(ctx, fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 部分更新。レスポンスが返すフィールドは全て新しい正として扱う
func (r *ProductAPIRepository) Update(ctx context.Context, id int64, in repo.UpdateProductInput) (model.Product, error) {
	var p model.Product
	if err := r.client.PutJSON(ctx, fmt.Sprintf("/products/%d", id), in, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductAPIRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.client.GetJSON(ctx, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
