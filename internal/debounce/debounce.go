package debounce

import (
	"sync"
	"time"
)

// 検索入力用の既定の静止時間
const DefaultWindow = 500 * time.Millisecond

// 値が一定時間変化しなくなってから1回だけコールバックを呼ぶ。
// 静止前に新しい値が来たら前の発火は取り消されて待ち直す
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func(string)
	timer  *time.Timer
	closed bool
}

func New(window time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.closed {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()
		d.fn(value)
	})
}

// 破棄。発火待ちがあれば取り消す
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
