package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curlylint/site/internal/snippet"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(ttl time.Duration) (*Registry, *clock) {
	return newCappedRegistry(ttl, 0)
}

func newCappedRegistry(ttl time.Duration, maxEntries int) (*Registry, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := New(ttl, maxEntries)
	r.now = c.Now
	return r, c
}

func newRenderer(id string) *snippet.Renderer {
	return snippet.NewRenderer(nil, snippet.Snippet{Text: "x", Language: "twig"}, nil, snippet.Options{ID: id})
}

func TestRegistry_PutGet(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	id := NewID()
	rd := newRenderer(id)

	r.Put(rd)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, rd, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	tests := []struct {
		name string
		id   string
	}{
		{name: "unknown uuid", id: NewID()},
		{name: "not a uuid", id: "../../etc/passwd"},
		{name: "empty", id: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Get(tt.id)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestRegistry_SweepEvictsIdle(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	idle, busy := NewID(), NewID()
	r.Put(newRenderer(idle))
	r.Put(newRenderer(busy))

	c.Advance(40 * time.Second)
	_, err := r.Get(busy)
	require.NoError(t, err)

	c.Advance(40 * time.Second)
	assert.Equal(t, 1, r.Sweep())

	_, err = r.Get(idle)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(busy)
	assert.NoError(t, err)
}

func TestRegistry_PutSweepsPeriodically(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	for i := 0; i < sweepEvery-1; i++ {
		r.Put(newRenderer(NewID()))
	}
	c.Advance(2 * time.Minute)

	r.Put(newRenderer(NewID()))
	assert.Equal(t, 1, r.Len())
}

func TestNew_Defaults(t *testing.T) {
	r := New(0, 0)
	assert.Equal(t, DefaultTTL, r.ttl)
	assert.Equal(t, DefaultMaxEntries, r.maxEntries)
}

func TestRegistry_PutSameIDCountsOnce(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	id := NewID()
	r.Put(newRenderer(id))
	r.Put(newRenderer(id))
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CapEvictsLeastRecentlyUsed(t *testing.T) {
	const maxEntries = 50
	r, c := newCappedRegistry(time.Hour, maxEntries)

	oldest := NewID()
	r.Put(newRenderer(oldest))

	var last string
	for i := 0; i < 2000; i++ {
		c.Advance(time.Millisecond)
		last = NewID()
		r.Put(newRenderer(last))
		require.LessOrEqual(t, r.Len(), maxEntries)
	}

	_, err := r.Get(oldest)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Get(last)
	assert.NoError(t, err, "the newest renderer survives eviction")
}

func TestRegistry_CapKeepsRecentlyUsed(t *testing.T) {
	const maxEntries = 10
	r, c := newCappedRegistry(time.Hour, maxEntries)

	ids := make([]string, maxEntries)
	for i := range ids {
		c.Advance(time.Millisecond)
		ids[i] = NewID()
		r.Put(newRenderer(ids[i]))
	}
	c.Advance(time.Millisecond)
	_, err := r.Get(ids[0])
	require.NoError(t, err)

	c.Advance(time.Millisecond)
	r.Put(newRenderer(NewID()))

	_, err = r.Get(ids[0])
	assert.NoError(t, err, "a renderer touched recently is not the oldest")
	_, err = r.Get(ids[1])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New(time.Minute, 0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewID()
			r.Put(newRenderer(id))
			_, err := r.Get(id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, r.Len())
}
