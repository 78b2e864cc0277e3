package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// リモートには注文リソースが無いので、カートから導出した表示用エンティティ。
// StatusはIDのみから決まる。Dateも同じIDなら同じ値になる（再取得で揺れない）
type Order struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	TotalProducts   int64         `json:"totalProducts"`
	TotalQuantity   int64         `json:"totalQuantity"`
	Status          OrderStatus   `json:"status"`
	Date            time.Time     `json:"date"`
	Products        []CartProduct `json:"products"`
}
