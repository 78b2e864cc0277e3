package api

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"net/url"
	"strconv"
	"time"

	"app/internal/domain/model"
)

type Clock interface {
	Now() time.Time
}

var orderStatuses = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusProcessing,
	model.OrderStatusShipped,
	model.OrderStatusDelivered,
	model.OrderStatusCancelled,
}

// 注文日の散らし幅（過去90日以内）
const orderDateWindow = 90 * 24 * time.Hour

type OrderAPIRepository struct {
	client *Client
	clock  Clock
}

// DI
func NewOrderAPIRepository(client *Client, clock Clock) *OrderAPIRepository {
	return &OrderAPIRepository{client: client, clock: clock}
}

type cartsResponse struct {
	Carts []model.Cart `json:"carts"`
	Total int64        `json:"total"`
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
}

func (r *OrderAPIRepository) List(ctx context.Context, skip int, limit int) ([]model.Order, int64, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("skip", strconv.Itoa(skip))

	var res cartsResponse
	if err := r.client.GetJSON(ctx, "/carts", query, &res); err != nil {
		return nil, 0, err
	}

	now := r.clock.Now()
	orders := make([]model.Order, 0, len(res.Carts))
	for _, cart := range res.Carts {
		orders = append(orders, convertCartToOrder(cart, now))
	}
	return orders, res.Total, nil
}

// カート→注文の射影。StatusもDateもIDだけから決まる
func convertCartToOrder(cart model.Cart, now time.Time) model.Order {
	var totalQuantity int64
	for _, p := range cart.Products {
		totalQuantity += p.Quantity
	}

	return model.Order{
		ID:              cart.ID,
		UserID:          cart.UserID,
		Total:           cart.Total,
		DiscountedTotal: cart.DiscountedTotal,
		TotalProducts:   cart.TotalProducts,
		TotalQuantity:   totalQuantity,
		Status:          generateStatus(cart.ID),
		Date:            now.Add(-orderDateOffset(cart.ID)),
		Products:        cart.Products,
	}
}

// 固定5種のステータスをIDで巡回させる。
// 壊れたペイロードで負のIDが来てもインデックスが負にならないようにする
func generateStatus(cartID int64) model.OrderStatus {
	n := int64(len(orderStatuses))
	return orderStatuses[((cartID%n)+n)%n]
}

// IDのハッシュで過去90日以内のオフセットを決める。
// 乱数だと再取得のたびに日付が揺れるので使わない
func orderDateOffset(cartID int64) time.Duration {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(cartID))
	h.Write(buf[:])
	return time.Duration(h.Sum64() % uint64(orderDateWindow))
}
