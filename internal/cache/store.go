package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/Houeta/hrms-lite/internal/metrics"
)

// EventKind tells a subscriber what happened to a key.
type EventKind int

const (
	// Updated means fresh data is available through Peek.
	Updated EventKind = iota
	// Invalidated means the key is stale; the next Read goes to the network.
	Invalidated
	// Failed means a fetch for the key returned an error. The previous snapshot is kept.
	Failed
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case Updated:
		return "updated"
	case Invalidated:
		return "invalidated"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers of a key.
type Event struct {
	Key  Key
	Kind EventKind
	Err  error // set for Failed
}

// Listener receives events. It runs on the goroutine that caused the event and
// must not block; hand long work off to another goroutine.
type Listener func(Event)

// FetchFunc loads the value of a key from the remote API.
type FetchFunc func(ctx context.Context) (any, error)

// Snapshot is the last known state of a key.
type Snapshot struct {
	Value  any
	Loaded bool  // a fetch or Set has succeeded at least once
	Stale  bool  // the key was invalidated since Value was stored
	Err    error // error of the most recent failed fetch, cleared on success
}

type entry struct {
	value  any
	loaded bool
	stale  bool
	gen    uint64 // bumped on every Invalidate and Set
	err    error
}

// Store is the query cache shared by all views. Build one per application
// with New and pass it to every consumer.
type Store struct {
	log     *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	entries map[Key]*entry
	subs    map[Key]map[uint64]Listener
	nextSub uint64

	group singleflight.Group
}

// New creates an empty Store.
func New(log *slog.Logger, metrics *metrics.Metrics) *Store {
	return &Store{
		log:     log.With(slog.String("division", "cache")),
		metrics: metrics,
		entries: make(map[Key]*entry),
		subs:    make(map[Key]map[uint64]Listener),
	}
}

// Read returns the value of key, fetching it when the key has never been
// loaded or was invalidated. At most one fetch per key is in flight: reads
// arriving while it runs wait for it. A reader that arrived after an
// invalidation does not accept the older fetch's response and waits for one
// follow-up fetch instead.
//
// The fetch runs detached from ctx cancellation: a caller that gives up gets
// ctx.Err() while the fetch finishes and fills the cache for later readers.
func (s *Store) Read(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	detached := context.WithoutCancel(ctx)

	for {
		s.mu.Lock()
		ent := s.entryLocked(key)
		if ent.loaded && !ent.stale {
			value := ent.value
			s.mu.Unlock()
			s.metrics.CacheReads.WithLabelValues(string(key.Resource), "hit").Inc()
			return value, nil
		}
		wantGen := ent.gen
		s.mu.Unlock()

		flight := s.group.DoChan(key.String(), func() (any, error) {
			return s.fetch(detached, key, fetch)
		})

		select {
		case res := <-flight:
			done, _ := res.Val.(fetched)
			if done.gen < wantGen {
				// started before the invalidation this reader observed
				continue
			}
			result := "miss"
			if res.Shared {
				result = "shared"
			}
			s.metrics.CacheReads.WithLabelValues(string(key.Resource), result).Inc()
			return done.value, res.Err
		case <-ctx.Done():
			return nil, fmt.Errorf("read %s: %w", key, ctx.Err())
		}
	}
}

// fetched is the outcome of one fetch and the generation it was started under.
type fetched struct {
	value any
	gen   uint64
}

func (s *Store) fetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	log := s.log.With(slog.String("op", "Cache.fetch"), sl.Query(key))
	s.metrics.Fetches.WithLabelValues(string(key.Resource)).Inc()

	s.mu.Lock()
	gen := s.entryLocked(key).gen
	s.mu.Unlock()

	value, err := fetch(ctx)

	s.mu.Lock()
	ent := s.entryLocked(key)
	if ent.gen != gen {
		s.mu.Unlock()
		log.DebugContext(ctx, "Discarding response for invalidated query", "gen", gen, "current_gen", ent.gen)
		s.metrics.StaleDiscarded.WithLabelValues(string(key.Resource)).Inc()
		return fetched{value: value, gen: gen}, err
	}

	event := Event{Key: key, Kind: Updated}
	if err != nil {
		ent.err = err
		event = Event{Key: key, Kind: Failed, Err: err}
	} else {
		ent.value = value
		ent.loaded = true
		ent.stale = false
		ent.err = nil
	}
	listeners := s.listenersLocked(key)
	s.mu.Unlock()

	if err != nil {
		log.WarnContext(ctx, "Fetch failed", sl.Err(err))
	}
	notify(listeners, event)

	return fetched{value: value, gen: gen}, err
}

// Peek returns the current snapshot of key without fetching.
func (s *Store) Peek(key Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		return Snapshot{}
	}

	return Snapshot{Value: ent.value, Loaded: ent.loaded, Stale: ent.stale, Err: ent.err}
}

// Set stores value for key as fresh data, typically the record returned by a
// mutation. A fetch for key that is still in flight is discarded when it resolves.
func (s *Store) Set(key Key, value any) {
	s.mu.Lock()
	ent := s.entryLocked(key)
	ent.value = value
	ent.loaded = true
	ent.stale = false
	ent.err = nil
	ent.gen++
	listeners := s.listenersLocked(key)
	s.mu.Unlock()

	notify(listeners, Event{Key: key, Kind: Updated})
}

// Invalidate marks keys stale. Subscribers keep the previous snapshot until a
// new Read resolves.
func (s *Store) Invalidate(keys ...Key) {
	type pending struct {
		listeners []Listener
		event     Event
	}
	batch := make([]pending, 0, len(keys))

	s.mu.Lock()
	for _, key := range keys {
		ent := s.entryLocked(key)
		ent.stale = true
		ent.gen++
		batch = append(batch, pending{listeners: s.listenersLocked(key), event: Event{Key: key, Kind: Invalidated}})
	}
	s.mu.Unlock()

	for _, p := range batch {
		s.metrics.Invalidations.WithLabelValues(string(p.event.Key.Resource)).Inc()
		s.log.Debug("Query invalidated", sl.Query(p.event.Key))
		notify(p.listeners, p.event)
	}
}

// InvalidateMatching invalidates every known key of resource for which match returns true.
func (s *Store) InvalidateMatching(resource Resource, match func(Key) bool) {
	var keys []Key

	s.mu.Lock()
	for key := range s.entries {
		if key.Resource == resource && match(key) {
			keys = append(keys, key)
		}
	}
	s.mu.Unlock()

	if len(keys) > 0 {
		s.Invalidate(keys...)
	}
}

// Subscribe registers fn for events on key. The returned func removes it.
func (s *Store) Subscribe(key Key, fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	if s.subs[key] == nil {
		s.subs[key] = make(map[uint64]Listener)
	}
	s.subs[key][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
		if len(s.subs[key]) == 0 {
			delete(s.subs, key)
		}
	}
}

func (s *Store) entryLocked(key Key) *entry {
	ent, ok := s.entries[key]
	if !ok {
		ent = &entry{}
		s.entries[key] = ent
	}
	return ent
}

func (s *Store) listenersLocked(key Key) []Listener {
	subs := s.subs[key]
	listeners := make([]Listener, 0, len(subs))
	for _, fn := range subs {
		listeners = append(listeners, fn)
	}
	return listeners
}

func notify(listeners []Listener, event Event) {
	for _, fn := range listeners {
		fn(event)
	}
}

// Get is a typed Read.
func Get[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := s.Read(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("query %s holds %T, not %T", key, value, zero)
	}

	return typed, nil
}

// PeekAs is a typed Peek. ok is false when nothing of type T is stored.
func PeekAs[T any](s *Store, key Key) (value T, stale bool, ok bool) {
	snap := s.Peek(key)
	if !snap.Loaded {
		return value, snap.Stale, false
	}
	value, ok = snap.Value.(T)
	return value, snap.Stale, ok
}
