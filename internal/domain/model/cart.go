package model

// /carts レスポンスの1明細
type CartProduct struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	Total     float64 `json:"total"`
	Thumbnail string  `json:"thumbnail"`
}

// リモートのカート。注文（Order）へ射影して使う
type Cart struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	Total           float64       `json:"total"`
	DiscountedTotal float64       `json:"discountedTotal"`
	TotalProducts   int64         `json:"totalProducts"`
	Products        []CartProduct `json:"products"`
}
