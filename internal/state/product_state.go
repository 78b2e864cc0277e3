package state

import (
	"sort"

	"app/internal/domain/model"
)

// priceRangeの既定値。この範囲のままなら絞り込みは何もしない
const (
	PriceRangeMin = 0
	PriceRangeMax = 2000
)

const defaultPageSize = 10

type ProductFilters struct {
	Search     string
	Category   string
	PriceRange [2]float64
}

// 商品一覧はpage×pageSize方式（注文側はskip/limit方式）
type ProductPagination struct {
	Page     int
	PageSize int
	Total    int64
}

type ProductState struct {
	List           []model.Product
	CurrentProduct *model.Product
	Total          int64
	Loading        bool
	Error          string
	Filters        ProductFilters
	Pagination     ProductPagination
	Categories     []string
}

func newProductState() ProductState {
	return ProductState{
		Filters: ProductFilters{
			PriceRange: [2]float64{PriceRangeMin, PriceRangeMax},
		},
		Pagination: ProductPagination{
			Page:     0,
			PageSize: defaultPageSize,
		},
	}
}

// フィルタの部分更新
type ProductFiltersPatch struct {
	Search     *string
	Category   *string
	PriceRange *[2]float64
}

// ページングの部分更新。Limitは表示上のpageSizeに対応する
type ProductPaginationPatch struct {
	Page  *int
	Limit *int
}

// 現在の商品スライスのスナップショットを返す
func (s *Store) Products() ProductState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

func (s *Store) SetProductFilters(patch ProductFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Search != nil {
		s.products.Filters.Search = *patch.Search
	}
	if patch.Category != nil {
		s.products.Filters.Category = *patch.Category
	}
	if patch.PriceRange != nil {
		s.products.Filters.PriceRange = *patch.PriceRange
	}
	s.notify()
}

func (s *Store) SetProductPagination(patch ProductPaginationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Page != nil {
		s.products.Pagination.Page = *patch.Page
	}
	if patch.Limit != nil {
		s.products.Pagination.PageSize = *patch.Limit
	}
	if s.products.Pagination.Page < 0 {
		s.products.Pagination.Page = 0
	}
	s.notify()
}

// isActiveのローカル切り替え。サーバーには送らない（次のUpdateにも混ぜない）
func (s *Store) SetActiveStatus(id int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[id] = active

	// スナップショットを配っているので一覧はコピーしてから書き換える
	list := make([]model.Product, len(s.products.List))
	copy(list, s.products.List)
	for i := range list {
		if list[i].ID == id {
			list[i].IsActive = active
		}
	}
	s.products.List = list

	if s.products.CurrentProduct != nil && s.products.CurrentProduct.ID == id {
		p := *s.products.CurrentProduct
		p.IsActive = active
		s.products.CurrentProduct = &p
	}
	s.notify()
}

func (s *Store) ClearCurrentProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products.CurrentProduct = nil
	s.notify()
}

// 非同期操作の開始。loadingを立てて前回のerrorを消し、採番した順序番号と
// 呼び出し時点のスナップショットを返す
func (s *Store) BeginProductOp() (uint64, ProductState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.productSeq.next()
	s.products.Loading = true
	s.products.Error = ""
	s.notify()
	return seq, s.products
}

// 一覧取得の完了。古い操作の結果は捨てる
func (s *Store) CompleteProductList(seq uint64, items []model.Product, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productSeq.apply(seq) {
		return
	}

	merged := make([]model.Product, len(items))
	for i, p := range items {
		merged[i] = s.applyActiveOverlay(p)
	}

	s.products.Loading = false
	s.products.List = merged
	s.products.Total = total
	s.products.Pagination.Total = total
	s.products.Categories = distinctCategories(merged)
	s.notify()
}

func (s *Store) CompleteProductDetail(seq uint64, p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productSeq.apply(seq) {
		return
	}

	merged := s.applyActiveOverlay(p)
	s.products.Loading = false
	s.products.CurrentProduct = &merged
	s.notify()
}

// 更新の完了。サーバーのレスポンスを正とするが、isActiveだけは
// オーバーレイの値（更新前のローカル値）を保つ。
// 反映の有無に関わらずマージ済みの商品を返す
func (s *Store) CompleteProductUpdate(seq uint64, p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.applyActiveOverlay(p)
	if !s.productSeq.apply(seq) {
		return merged
	}
	s.products.Loading = false

	list := make([]model.Product, len(s.products.List))
	copy(list, s.products.List)
	for i := range list {
		if list[i].ID == merged.ID {
			list[i] = merged
		}
	}
	s.products.List = list

	if s.products.CurrentProduct != nil && s.products.CurrentProduct.ID == merged.ID {
		cp := merged
		s.products.CurrentProduct = &cp
	}
	s.notify()
	return merged
}

func (s *Store) FailProductOp(seq uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productSeq.apply(seq) {
		return
	}

	s.products.Loading = false
	s.products.Error = message
	s.notify()
}

// サーバーのペイロードにはisActiveが無いので、取得結果には必ずこれを通す。
// オーバーレイ未登録のIDはtrue扱い
func (s *Store) applyActiveOverlay(p model.Product) model.Product {
	if active, ok := s.active[p.ID]; ok {
		p.IsActive = active
	} else {
		p.IsActive = true
	}
	return p
}

// 現在ページに出ているカテゴリの重複なし昇順リスト
func distinctCategories(items []model.Product) []string {
	seen := map[string]struct{}{}
	categories := []string{}
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
