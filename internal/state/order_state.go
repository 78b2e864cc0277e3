package state

import "app/internal/domain/model"

// 注文一覧は生のskip/limit方式
type OrderPagination struct {
	Skip  int
	Limit int
	Total int64
}

type OrderState struct {
	List       []model.Order
	Total      int64
	Loading    bool
	Error      string
	Pagination OrderPagination
}

func newOrderState() OrderState {
	return OrderState{
		Pagination: OrderPagination{
			Skip:  0,
			Limit: defaultPageSize,
		},
	}
}

type OrderPaginationPatch struct {
	Skip  *int
	Limit *int
}

func (s *Store) Orders() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders
}

// skipは負にならないように丸める
func (s *Store) SetOrderSkip(skip int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders.Pagination.Skip = max(0, skip)
	s.notify()
}

func (s *Store) SetOrderPagination(patch OrderPaginationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Skip != nil {
		s.orders.Pagination.Skip = *patch.Skip
	}
	if patch.Limit != nil {
		s.orders.Pagination.Limit = *patch.Limit
	}
	s.orders.Pagination.Skip = max(0, s.orders.Pagination.Skip)
	s.notify()
}

func (s *Store) BeginOrderOp() (uint64, OrderState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.orderSeq.next()
	s.orders.Loading = true
	s.orders.Error = ""
	s.notify()
	return seq, s.orders
}

func (s *Store) CompleteOrderList(seq uint64, items []model.Order, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.orderSeq.apply(seq) {
		return
	}

	s.orders.Loading = false
	s.orders.List = items
	s.orders.Total = total
	s.orders.Pagination.Total = total
	s.notify()
}

func (s *Store) FailOrderOp(seq uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.orderSeq.apply(seq) {
		return
	}

	s.orders.Loading = false
	s.orders.Error = message
	s.notify()
}
