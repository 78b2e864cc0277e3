package state

import "sync"

// 画面側が持つ正の状態。必ずNewStoreで作って注入する（パッケージ変数にはしない）。
// 変更は全てこのミューテックス越しの1点に直列化される
type Store struct {
	mu       sync.Mutex
	products ProductState
	orders   OrderState

	// スライスごとの操作順序番号。後から発行された操作の結果だけを反映する
	productSeq seqCounter
	orderSeq   seqCounter

	// isActiveのクライアント側オーバーレイ（商品ID→フラグ）。
	// サーバーはこのフィールドを持たないので、取得のたびにここからマージする
	active map[int64]bool

	subs []chan struct{}
}

type seqCounter struct {
	issued  uint64
	applied uint64
}

// 発行時に採番する
func (c *seqCounter) next() uint64 {
	c.issued++
	return c.issued
}

// seqが今まで反映した中で最新なら反映してよい
func (c *seqCounter) apply(seq uint64) bool {
	if seq <= c.applied {
		return false
	}
	c.applied = seq
	return true
}

func NewStore() *Store {
	return &Store{
		products: newProductState(),
		orders:   newOrderState(),
		active:   map[int64]bool{},
	}
}

// 状態変更の通知チャネル。変更1回につき最大1件（バッファ1、溢れは捨てる）
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// 購読解除。SSE接続が切れたら必ず呼ぶこと
func (s *Store) Unsubscribe(ch <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// 呼び出し側がロックを持っていること
func (s *Store) notify() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
