// ABOUTME: Tests for the submission cache
// ABOUTME: Covers the window, eviction, forgetting and key stability

package dedupe

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source for tests.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestCache(t *testing.T, window time.Duration, size int) (*Cache, *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New(window, size)
	c.now = clk.now
	t.Cleanup(c.Close)
	return c, clk
}

func TestRecord_FirstIsNotDuplicate(t *testing.T) {
	c, _ := newTestCache(t, 5*time.Second, 10)

	assert.False(t, c.Record("a"))
	assert.True(t, c.Seen("a"))
	assert.True(t, c.Record("a"))
}

func TestRecord_WindowPasses(t *testing.T) {
	c, clk := newTestCache(t, 5*time.Second, 10)

	require.False(t, c.Record("a"))
	clk.advance(4 * time.Second)
	assert.True(t, c.Record("a"))

	clk.advance(2 * time.Second)
	assert.False(t, c.Seen("a"))
	assert.False(t, c.Record("a"), "expired key is recorded afresh")
	assert.True(t, c.Record("a"))
}

func TestRecord_EvictsOldest(t *testing.T) {
	c, _ := newTestCache(t, time.Minute, 2)

	c.Record("a")
	c.Record("b")
	c.Record("c")

	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Seen("a"))
	assert.True(t, c.Seen("b"))
	assert.True(t, c.Seen("c"))
}

func TestForget(t *testing.T) {
	c, _ := newTestCache(t, time.Minute, 10)

	c.Record("a")
	c.Forget("a")
	c.Forget("missing")

	assert.False(t, c.Record("a"))
}

func TestExpire(t *testing.T) {
	c, clk := newTestCache(t, time.Second, 10)

	c.Record("a")
	clk.advance(500 * time.Millisecond)
	c.Record("b")
	clk.advance(600 * time.Millisecond)
	c.expire()

	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Seen("b"))
}

func TestClose_Twice(t *testing.T) {
	c := New(time.Second, 1)
	c.Close()
	assert.NotPanics(t, c.Close)
}

func TestRecord_Concurrent(t *testing.T) {
	c, _ := newTestCache(t, time.Minute, 100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	fresh := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !c.Record("same") {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh)
}

func TestSubmissionKey(t *testing.T) {
	form := url.Values{"name": {"Plumbing"}, "status": {"Active"}, "csrf_token": {"one"}}
	same := url.Values{"status": {"Active"}, "name": {"Plumbing"}, "csrf_token": {"two"}}

	k := SubmissionKey("shell-1", "/admin/categories", form, "csrf_token")
	assert.Equal(t, k, SubmissionKey("shell-1", "/admin/categories", same, "csrf_token"))

	assert.NotEqual(t, k, SubmissionKey("shell-2", "/admin/categories", form, "csrf_token"))
	assert.NotEqual(t, k, SubmissionKey("shell-1", "/admin/roles", form, "csrf_token"))

	changed := url.Values{"name": {"Painting"}, "status": {"Active"}}
	assert.NotEqual(t, k, SubmissionKey("shell-1", "/admin/categories", changed, "csrf_token"))
}
