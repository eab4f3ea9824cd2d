// ABOUTME: Time-windowed memory of form submissions for the dashboard
// ABOUTME: A repeat of the same submission inside the window is reported as a duplicate

// Package dedupe remembers recent form submissions so a double-clicked
// create button does not create the record twice.
package dedupe

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	at   time.Time
	elem *list.Element
}

// Cache is a size-bounded set of submission keys that expire after a window.
// Keys are kept in arrival order so the oldest is evicted first.
type Cache struct {
	mu      sync.Mutex
	seen    map[string]*entry
	order   *list.List
	window  time.Duration
	maxSize int
	now     func() time.Time
	done    chan struct{}
	closed  bool
}

// New creates a cache that treats a key as a duplicate for window after it
// was first recorded, holding at most maxSize keys.
func New(window time.Duration, maxSize int) *Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	c := &Cache{
		seen:    make(map[string]*entry),
		order:   list.New(),
		window:  window,
		maxSize: maxSize,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Seen reports whether key was recorded within the window, without recording it.
func (c *Cache) Seen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.seen[key]
	return ok && c.now().Sub(e.at) < c.window
}

// Record reports whether key is a duplicate. A key that is new, or whose
// window has passed, is recorded and reported as not duplicate.
func (c *Cache) Record(key string) (duplicate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.seen[key]; ok {
		if now.Sub(e.at) < c.window {
			return true
		}
		e.at = now
		c.order.MoveToBack(e.elem)
		return false
	}

	if len(c.seen) >= c.maxSize {
		if front := c.order.Front(); front != nil {
			k, _ := front.Value.(string)
			c.order.Remove(front)
			delete(c.seen, k)
		}
	}
	c.seen[key] = &entry{at: now, elem: c.order.PushBack(key)}
	return false
}

// Forget drops key so the next submission goes through, used when the
// recorded attempt failed.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.seen[key]; ok {
		c.order.Remove(e.elem)
		delete(c.seen, key)
	}
}

// Len returns the number of keys held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.expire()
		case <-c.done:
			return
		}
	}
}

func (c *Cache) expire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.seen {
		if now.Sub(e.at) >= c.window {
			c.order.Remove(e.elem)
			delete(c.seen, k)
		}
	}
}

// Close stops the background sweep. It is safe to call more than once.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		close(c.done)
		c.closed = true
	}
}

// SubmissionKey identifies a form post by who sent it, where, and what.
// Fields named in skip (such as the CSRF token) do not affect the key.
func SubmissionKey(owner, path string, form url.Values, skip ...string) string {
	names := make([]string, 0, len(form))
	for name := range form {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	h.Write([]byte(owner + "\x00" + path + "\x00"))
outer:
	for _, name := range names {
		for _, s := range skip {
			if name == s {
				continue outer
			}
		}
		h.Write([]byte(name + "=" + strings.Join(form[name], "\x1f") + "\x00"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
