package state

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetOrderSkip_ClampsNegative(t *testing.T) {
	s := NewStore()

	s.SetOrderSkip(-10)
	assert.Equal(t, 0, s.Orders().Pagination.Skip)

	s.SetOrderSkip(30)
	assert.Equal(t, 30, s.Orders().Pagination.Skip)
}

func TestStore_SetOrderPagination_MergesThenClamps(t *testing.T) {
	s := NewStore()

	limit := 25
	s.SetOrderPagination(OrderPaginationPatch{Limit: &limit})

	snap := s.Orders()
	assert.Equal(t, 25, snap.Pagination.Limit)
	assert.Equal(t, 0, snap.Pagination.Skip)

	skip := -5
	s.SetOrderPagination(OrderPaginationPatch{Skip: &skip})
	assert.Equal(t, 0, s.Orders().Pagination.Skip)
}

func TestStore_CompleteOrderList(t *testing.T) {
	s := NewStore()

	seq, snap := s.BeginOrderOp()
	assert.True(t, snap.Loading)

	s.CompleteOrderList(seq, []model.Order{{ID: 1}, {ID: 2}}, 40)

	snap = s.Orders()
	assert.False(t, snap.Loading)
	assert.Len(t, snap.List, 2)
	assert.Equal(t, int64(40), snap.Total)
	assert.Equal(t, int64(40), snap.Pagination.Total)
}

func TestStore_FailOrderOp(t *testing.T) {
	s := NewStore()

	seq, _ := s.BeginOrderOp()
	s.FailOrderOp(seq, "boom")

	snap := s.Orders()
	assert.False(t, snap.Loading)
	assert.Equal(t, "boom", snap.Error)
}

// 注文側も古い完了は捨てる
func TestStore_CompleteOrderList_StaleResultDiscarded(t *testing.T) {
	s := NewStore()

	seqA, _ := s.BeginOrderOp()
	seqB, _ := s.BeginOrderOp()

	s.CompleteOrderList(seqB, []model.Order{{ID: 21}}, 2)
	s.CompleteOrderList(seqA, []model.Order{{ID: 1}}, 2)

	snap := s.Orders()
	assert.Equal(t, int64(21), snap.List[0].ID)
}
