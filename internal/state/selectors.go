package state

import "app/internal/domain/model"

// 正規化済みページング（skip/limit表現）
type Pagination struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// priceRangeだけで絞り込む。search/categoryはサーバー側で適用済み。
// 既定の[0,2000]のままなら何もしない
func SelectFilteredProducts(s ProductState) []model.Product {
	lo, hi := s.Filters.PriceRange[0], s.Filters.PriceRange[1]
	if lo <= PriceRangeMin && hi >= PriceRangeMax {
		return s.List
	}

	filtered := []model.Product{}
	for _, p := range s.List {
		if p.Price >= lo && p.Price <= hi {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// 現在ページのカテゴリ（重複なし・昇順）
func SelectAllCategories(s ProductState) []string {
	return distinctCategories(s.List)
}

// page×pageSizeをskip/limitに直す。skipは負にしない
func SelectProductPagination(s ProductState) Pagination {
	skip := s.Pagination.Page * s.Pagination.PageSize
	return Pagination{
		Skip:  max(0, skip),
		Limit: s.Pagination.PageSize,
		Total: s.Pagination.Total,
	}
}
