package model

// リモートカタログAPIの商品。JSONタグはAPI側のフィールド名に合わせる
type Product struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`

	// クライアント専用フラグ。サーバーは持っていない（送信しない・上書きされない）
	IsActive bool `json:"isActive"`
}
