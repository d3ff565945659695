package animator

import (
	"sync"

	"github.com/google/uuid"
)

// animator is the implementation of the Animator interface.
type animator struct {
	mu sync.Mutex

	id        uuid.UUID
	name      string
	destroyed bool

	nextSub   uint64
	callbacks map[uint64]func()
	order     []uint64
}

// Animator is an opaque identity for an entity that plays animations — the
// consumer side of the cache. The cache does not own animators; it only
// references them and subscribes to their destruction signal.
//
// Destruction is one-shot: Destroy runs every registered callback exactly
// once, synchronously, in registration order, then discards the
// registration list so the signal can never fire again.
type Animator interface {
	// ID returns the animator's stable unique identifier.
	//
	// Returns:
	//   - uuid.UUID: the animator ID
	ID() uuid.UUID

	// Name returns the animator's human-readable name.
	//
	// Returns:
	//   - string: the animator name
	Name() string

	// OnDestroy registers a callback to run when the animator is destroyed.
	// If the animator is already destroyed, the callback runs immediately.
	// The returned function unsubscribes the callback; calling it after the
	// signal has fired is a no-op.
	//
	// Parameters:
	//   - fn: the callback to run on destruction
	//
	// Returns:
	//   - func(): the unsubscribe function
	OnDestroy(fn func()) func()

	// Destroyed reports whether Destroy has been called.
	//
	// Returns:
	//   - bool: true once destroyed
	Destroyed() bool

	// Destroy fires the destruction signal. The first call runs all
	// registered callbacks in registration order; subsequent calls are
	// no-ops. Callbacks run synchronously on the calling goroutine, so the
	// environment's guarantee that no mutation is in flight at destruction
	// time carries through to every subscriber.
	Destroy()
}

var _ Animator = &animator{}

// New creates an Animator with a freshly generated ID and the given options
// applied.
//
// Parameters:
//   - name: the animator's human-readable name
//   - options: a variadic list of AnimatorBuilderOption functions to configure the animator
//
// Returns:
//   - Animator: the newly created animator
func New(name string, options ...AnimatorBuilderOption) Animator {
	a := &animator{
		id:        uuid.New(),
		name:      name,
		callbacks: make(map[uint64]func()),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *animator) ID() uuid.UUID { return a.id }

func (a *animator) Name() string { return a.name }

func (a *animator) OnDestroy(fn func()) func() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		fn()
		return func() {}
	}

	sub := a.nextSub
	a.nextSub++
	a.callbacks[sub] = fn
	a.order = append(a.order, sub)
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.callbacks, sub)
	}
}

func (a *animator) Destroyed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.destroyed
}

func (a *animator) Destroy() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.destroyed = true

	fns := make([]func(), 0, len(a.callbacks))
	for _, sub := range a.order {
		if fn, ok := a.callbacks[sub]; ok {
			fns = append(fns, fn)
		}
	}
	a.callbacks = nil
	a.order = nil
	a.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
