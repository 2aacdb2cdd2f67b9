// Package registry keeps live snippet renderers between the first page
// render and the client's attach and preference requests.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/curlylint/site/internal/snippet"
)

// ErrNotFound is returned for unknown or evicted instance ids.
var ErrNotFound = errors.New("snippet instance not found")

// DefaultTTL is how long an idle renderer is kept.
const DefaultTTL = 30 * time.Minute

// DefaultMaxEntries bounds the number of live renderers.
const DefaultMaxEntries = 10000

const sweepEvery = 64

type entry struct {
	renderer *snippet.Renderer
	touched  atomic.Int64
}

// Registry maps instance ids to renderers. It uses a sync.Map for
// concurrent-safe access; idle entries are evicted lazily on insert, and the
// least recently used ones go first once the registry is full.
type Registry struct {
	entries    sync.Map
	size       atomic.Int64
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	inserts    atomic.Uint64
	evictMu    sync.Mutex
}

// New creates a registry evicting renderers idle for longer than ttl and
// holding at most maxEntries renderers. Non-positive values use the defaults.
func New(ttl time.Duration, maxEntries int) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Registry{ttl: ttl, maxEntries: maxEntries, now: time.Now}
}

// NewID returns a fresh instance id.
func NewID() string {
	return uuid.NewString()
}

// Put registers a renderer under its id.
func (r *Registry) Put(rd *snippet.Renderer) {
	e := &entry{renderer: rd}
	e.touched.Store(r.now().UnixNano())
	if _, loaded := r.entries.Swap(rd.ID(), e); !loaded {
		r.size.Add(1)
	}

	if r.inserts.Add(1)%sweepEvery == 0 {
		r.Sweep()
	}
	if r.size.Load() > int64(r.maxEntries) {
		r.evictOldest()
	}
}

// evictOldest drops idle entries, then the least recently used ones, until
// the registry is a tenth below its capacity.
func (r *Registry) evictOldest() {
	r.evictMu.Lock()
	defer r.evictMu.Unlock()

	if r.size.Load() <= int64(r.maxEntries) {
		return
	}
	r.Sweep()

	target := int64(r.maxEntries - r.maxEntries/10)
	excess := r.size.Load() - target
	if excess <= 0 {
		return
	}

	type aged struct {
		key     any
		val     *entry
		touched int64
	}
	var all []aged
	r.entries.Range(func(key, val any) bool {
		e := val.(*entry)
		all = append(all, aged{key: key, val: e, touched: e.touched.Load()})
		return true
	})
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.touched < b.touched:
			return -1
		case a.touched > b.touched:
			return 1
		default:
			return 0
		}
	})
	for _, a := range all {
		if excess <= 0 {
			break
		}
		if r.entries.CompareAndDelete(a.key, a.val) {
			r.size.Add(-1)
			excess--
		}
	}
}

// Get returns the renderer for id and marks it as recently used.
func (r *Registry) Get(id string) (*snippet.Renderer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	val, ok := r.entries.Load(id)
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	e := val.(*entry)
	e.touched.Store(r.now().UnixNano())
	return e.renderer, nil
}

// Sweep evicts idle renderers and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl).UnixNano()
	removed := 0
	r.entries.Range(func(key, val any) bool {
		if val.(*entry).touched.Load() < cutoff && r.entries.CompareAndDelete(key, val) {
			r.size.Add(-1)
			removed++
		}
		return true
	})
	return removed
}

// Len returns the number of live renderers.
func (r *Registry) Len() int {
	return int(r.size.Load())
}
