package gui

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
// Each frame, stale entries (not accessed in the previous frame) are removed.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

// registerStore adds a store to the global cleanup registry.
// Called automatically by NewFrameStore.
func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the package frame counter and cleans all registered
// stores. Context.Reset calls it once at the start of each GUI frame, so
// registered stores only suit programs with a single GUI; state that must
// survive several GUIs lives in a per-Context store instead.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for widget state that automatically
// cleans up unused entries each frame.
//
// Usage:
//
//	var listStore = gui.NewFrameStore[ListState]()
//
//	func (ctx *Context) MyList(label string) {
//	    state := listStore.Get(ctx.GetStableID(label), ListState{})
//	    state.Scroll += 10
//	}
//
// Stores whose state owns resources use NewFrameStoreWithEvict so the
// resources are released when the widget stops being drawn.
type FrameStore[T any] struct {
	states  map[ID]*stateEntry[T]
	onEvict func(ID, *T)
	frame   uint64 // stamped on entries used this frame
	mu      sync.RWMutex
}

// NewFrameStore creates a new type-safe state store and registers it
// for automatic cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	return NewFrameStoreWithEvict[T](nil)
}

// NewFrameStoreWithEvict is like NewFrameStore but calls onEvict for every
// entry removed by Cleanup, Delete or Clear. onEvict runs without the store
// lock held, so it may use the store.
func NewFrameStoreWithEvict[T any](onEvict func(id ID, state *T)) *FrameStore[T] {
	store := newLocalFrameStore(onEvict)
	registryMu.Lock()
	store.frame = currentFrame
	registryMu.Unlock()
	registerStore(store)
	return store
}

// newLocalFrameStore creates a store that NextFrame does not clean. Its owner
// advances it with Cleanup.
func newLocalFrameStore[T any](onEvict func(id ID, state *T)) *FrameStore[T] {
	return &FrameStore[T]{
		states:  make(map[ID]*stateEntry[T]),
		onEvict: onEvict,
	}
}

// Get retrieves state for the given ID, or creates it with defaultVal if not found.
// Returns a pointer to the state, allowing direct modification.
// The state is marked as used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = s.frame
	return &entry.value
}

// GetIfExists retrieves state only if it already exists.
// Does NOT create default state or mark as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Set explicitly sets state for an ID and marks it as used this frame.
func (s *FrameStore[T]) Set(id ID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.value = value
		entry.lastFrame = s.frame
	} else {
		s.states[id] = &stateEntry[T]{
			value:     value,
			lastFrame: s.frame,
		}
	}
}

// Delete explicitly removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	entry, ok := s.states[id]
	delete(s.states, id)
	s.mu.Unlock()

	if ok {
		s.evict(map[ID]*stateEntry[T]{id: entry})
	}
}

// Cleanup starts frame and removes all entries that weren't accessed in the
// previous frame. NextFrame() calls it for registered stores - don't call it
// manually on those.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	var stale map[ID]*stateEntry[T]

	s.mu.Lock()
	s.frame = frame
	// frame-1 because the caller just incremented the counter
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			if stale == nil {
				stale = make(map[ID]*stateEntry[T])
			}
			stale[id] = entry
			delete(s.states, id)
		}
	}
	s.mu.Unlock()

	s.evict(stale)
}

func (s *FrameStore[T]) evict(entries map[ID]*stateEntry[T]) {
	if s.onEvict == nil {
		return
	}
	for id, entry := range entries {
		s.onEvict(id, &entry.value)
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	old := s.states
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()

	s.evict(old)
}
