package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.values...)
}

// 静止時間内の連打は最後の値だけが1回伝搬する
func TestDebouncer_RapidChangesFireOnce(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)
	defer d.Close()

	d.Set("a")
	d.Set("ab")
	d.Set("abc")

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, []string{"abc"}, rec.snapshot())
}

func TestDebouncer_SeparateStableValuesFireEach(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.record)
	defer d.Close()

	d.Set("first")
	time.Sleep(60 * time.Millisecond)
	d.Set("second")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.snapshot())
}

// Closeすると発火待ちは取り消され、以後のSetも無視される
func TestDebouncer_CloseCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	d.Set("pending")
	d.Close()
	d.Set("after close")

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}
