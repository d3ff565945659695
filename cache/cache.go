package cache

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KashTheKingYT/AnimTree/animator"
	"github.com/KashTheKingYT/AnimTree/content"
	"github.com/KashTheKingYT/AnimTree/loader"
	"github.com/KashTheKingYT/AnimTree/track"
	"github.com/google/uuid"
)

// entry is the per-animator cache record. Each entry carries its own mutex
// so disjoint animators can be mutated concurrently; operations on the same
// animator serialize on it.
type entry struct {
	mu sync.Mutex

	tracks map[string]track.Track

	// hookRegistered tracks the NoHook → HookRegistered transition. It flips
	// exactly once, on the first Cache call for the animator, and never back.
	hookRegistered bool
}

// cache is the implementation of the Cache interface.
type cache struct {
	mu sync.RWMutex

	entries map[uuid.UUID]*entry

	ldr       loader.TrackLoader
	preloader loader.Preloader
	root      content.Node
	logger    *slog.Logger

	// releaseOnOverwrite releases a previously cached track before a
	// same-named track replaces it. Off by default: replacing without
	// releasing is the documented behavior, and the overwrite is logged
	// so hosts can spot the potential leak.
	releaseOnOverwrite bool
}

// Cache owns the per-animator animation track tables: load-on-demand,
// bulk-load-by-directory, explicit caching of externally produced tracks,
// and lifetime-bound eviction. Loads are delegated to the TrackLoader the
// cache was constructed with; path lookups resolve against the configured
// content root.
//
// Every animator with at least one Cache call has exactly one destruction
// hook registered; when the animator is destroyed the hook releases all of
// its cached tracks and removes its table.
//
// Safe for concurrent use. Operations on disjoint animators proceed
// concurrently; operations on the same animator are serialized.
type Cache interface {
	// Load delegates to the TrackLoader to materialize a track bound to the
	// given animator. Load never caches the result — caching is the caller's
	// explicit choice via Cache, so transient tracks can be loaded without
	// polluting the animator's table.
	//
	// Parameters:
	//   - a: the animator the track will be bound to
	//   - desc: the animation descriptor to load
	//
	// Returns:
	//   - track.Track: the loaded track
	//   - error: the loader's failure, propagated untouched
	Load(a animator.Animator, desc content.Animation) (track.Track, error)

	// GetCached returns a copy of the animator's current track table, or nil
	// if the animator has never cached anything (or its table was removed by
	// the destruction hook). Read-only; no side effects.
	//
	// Parameters:
	//   - a: the animator to look up
	//
	// Returns:
	//   - map[string]track.Track: the cached tracks by name, or nil when absent
	GetCached(a animator.Animator) map[string]track.Track

	// Cache merges the supplied tracks into the animator's table,
	// overwriting same-named entries (last write wins). By default an
	// overwritten track is NOT released — see WithReleaseOnOverwrite.
	// The first Cache call for an animator — even with an empty map —
	// registers the destruction hook; the hook is never attached twice.
	//
	// Parameters:
	//   - a: the animator to cache for
	//   - tracks: the tracks to merge, keyed by animation name
	Cache(a animator.Animator, tracks map[string]track.Track)

	// ClearCache releases every track currently cached for the animator,
	// exactly once each, then resets the table to empty. Safe to call on an
	// animator with nothing cached; never fails. The destruction hook runs
	// this same logic and additionally removes the animator's entry.
	//
	// Parameters:
	//   - a: the animator to clear
	ClearCache(a animator.Animator)

	// ResourceObjects enumerates every animation node under scope in
	// depth-first traversal order. A nil scope means the cache's configured
	// content root.
	//
	// Parameters:
	//   - scope: the subtree to enumerate, or nil for the root
	//
	// Returns:
	//   - []content.Animation: the animation nodes found
	ResourceObjects(scope content.Node) []content.Animation

	// ResourceObject resolves a slash-delimited path against the content
	// root to an animation node.
	//
	// Parameters:
	//   - path: the path to resolve, e.g. "Combat/Punch"
	//
	// Returns:
	//   - content.Animation: the resolved animation node
	//   - error: a resolution failure (content.ErrNotFound) when the path is
	//     absent or names a non-animation node
	ResourceObject(path string) (content.Animation, error)

	// LoadFromPath resolves a path to an animation node and loads it for the
	// given animator. A failed resolution is a contract violation by the
	// caller and returns the resolution error; nothing is cached either way.
	//
	// Parameters:
	//   - a: the animator the track will be bound to
	//   - path: the animation's path under the content root
	//
	// Returns:
	//   - track.Track: the loaded track
	//   - error: the resolution or load failure
	LoadFromPath(a animator.Animator, path string) (track.Track, error)

	// LoadDirectory resolves a path to any node, then loads every animation
	// under it for the given animator. See LoadContainer for the loading
	// semantics.
	//
	// Parameters:
	//   - a: the animator the tracks will be bound to
	//   - path: the container's path under the content root
	//
	// Returns:
	//   - map[string]track.Track: freshly loaded tracks keyed by animation name
	//   - error: the resolution failure, or the first load failure
	LoadDirectory(a animator.Animator, path string) (map[string]track.Track, error)

	// LoadContainer loads every animation node under scope for the given
	// animator, producing a table keyed by animation name. It performs no
	// caching — the caller decides whether to pass the result to Cache. Any
	// single load failure aborts the whole call with no partial result.
	//
	// Parameters:
	//   - a: the animator the tracks will be bound to
	//   - scope: the subtree whose animations to load, or nil for the root
	//
	// Returns:
	//   - map[string]track.Track: freshly loaded tracks keyed by animation name
	//   - error: the first load failure
	LoadContainer(a animator.Animator, scope content.Node) (map[string]track.Track, error)

	// PreloadList forwards the batch to the bulk preload service. The call
	// may suspend until the whole batch completes or fails. Failures —
	// including panics inside the service — are captured at this boundary
	// and reported in the result; they never propagate to the caller.
	//
	// Parameters:
	//   - items: the descriptors and tracks to warm
	//   - progress: optional per-item completion callback (may be nil)
	//
	// Returns:
	//   - loader.PreloadResult: the batch summary (Err carries the failure)
	//   - bool: true when the whole batch succeeded
	PreloadList(items []loader.Preloadable, progress loader.ProgressFunc) (loader.PreloadResult, bool)

	// PreloadAll forwards every animation under the content root plus every
	// currently cached track across all animators to the bulk preload
	// service, with the same failure-capturing boundary as PreloadList.
	//
	// Parameters:
	//   - progress: optional per-item completion callback (may be nil)
	//
	// Returns:
	//   - loader.PreloadResult: the batch summary (Err carries the failure)
	//   - bool: true when the whole batch succeeded
	PreloadAll(progress loader.ProgressFunc) (loader.PreloadResult, bool)
}

var _ Cache = &cache{}

// New creates a Cache that delegates loads to the given TrackLoader, with
// the given options applied. Panics if the loader is nil. Without a
// WithPreloader option, batches run on a no-op pooled preloader that treats
// every descriptor as instantly warm.
//
// Parameters:
//   - l: the TrackLoader to delegate loads to (must not be nil)
//   - options: a variadic list of CacheBuilderOption functions to configure the cache
//
// Returns:
//   - Cache: the newly created cache
func New(l loader.TrackLoader, options ...CacheBuilderOption) Cache {
	if l == nil {
		panic("cache: New requires a non-nil TrackLoader")
	}

	c := &cache{
		entries: make(map[uuid.UUID]*entry),
		ldr:     l,
	}
	for _, option := range options {
		option(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.preloader == nil {
		c.preloader = loader.NewPooledPreloader(nil)
	}
	return c
}

func (c *cache) Load(a animator.Animator, desc content.Animation) (track.Track, error) {
	t, err := c.ldr.LoadAnimation(a, desc)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded animation track",
		"animation", desc.Name(), "animator", a.Name())
	return t, nil
}

func (c *cache) GetCached(a animator.Animator) map[string]track.Track {
	c.mu.RLock()
	e := c.entries[a.ID()]
	c.mu.RUnlock()
	if e == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]track.Track, len(e.tracks))
	for name, t := range e.tracks {
		out[name] = t
	}
	return out
}

func (c *cache) Cache(a animator.Animator, tracks map[string]track.Track) {
	e := c.entryFor(a)

	e.mu.Lock()
	for name, t := range tracks {
		if old, exists := e.tracks[name]; exists {
			c.logger.Warn("overwriting cached track",
				"animation", name, "animator", a.Name(),
				"released", c.releaseOnOverwrite)
			if c.releaseOnOverwrite {
				old.Release()
			}
		}
		e.tracks[name] = t
	}

	// NoHook → HookRegistered, exactly once per animator. The empty-map case
	// still registers: a Cache call expresses intent to manage this
	// animator's lifetime from now on.
	register := !e.hookRegistered
	e.hookRegistered = true
	e.mu.Unlock()

	// Registration happens outside the entry lock: an already-destroyed
	// animator runs the hook synchronously, and the hook re-acquires the
	// entry lock to clear it.
	if register {
		a.OnDestroy(func() {
			c.onAnimatorDestroyed(a)
		})
	}
}

func (c *cache) ClearCache(a animator.Animator) {
	c.mu.RLock()
	e := c.entries[a.ID()]
	c.mu.RUnlock()
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	c.clearLocked(e, a)
}

// clearLocked releases every cached track exactly once and resets the table.
// Caller must hold e.mu.
func (c *cache) clearLocked(e *entry, a animator.Animator) {
	released := 0
	for _, t := range e.tracks {
		if !t.Released() {
			t.Release()
			released++
		}
	}
	e.tracks = make(map[string]track.Track)
	if released > 0 {
		c.logger.Debug("cleared animation cache",
			"animator", a.Name(), "released", released)
	}
}

// onAnimatorDestroyed is the destruction hook body: HookRegistered → Fired.
// It clears the animator's tracks and removes the entry entirely, so the
// animator reads as never-cached afterwards. The animator's signal discards
// its registrations after firing, so this runs at most once.
func (c *cache) onAnimatorDestroyed(a animator.Animator) {
	c.mu.Lock()
	e := c.entries[a.ID()]
	delete(c.entries, a.ID())
	c.mu.Unlock()
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	c.clearLocked(e, a)
	c.logger.Debug("animator destroyed, cache entry removed", "animator", a.Name())
}

// entryFor returns the animator's entry, creating it lazily on first use.
func (c *cache) entryFor(a animator.Animator) *entry {
	c.mu.RLock()
	e := c.entries[a.ID()]
	c.mu.RUnlock()
	if e != nil {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e = c.entries[a.ID()]; e != nil {
		return e
	}
	e = &entry{
		tracks: make(map[string]track.Track),
	}
	c.entries[a.ID()] = e
	return e
}

func (c *cache) ResourceObjects(scope content.Node) []content.Animation {
	if scope == nil {
		scope = c.root
	}
	return content.Animations(scope)
}

func (c *cache) ResourceObject(path string) (content.Animation, error) {
	node, err := content.Resolve(c.root, path, content.KindAnimation)
	if err != nil {
		return nil, fmt.Errorf("cache: missing animation at %q: %w", path, err)
	}
	desc, ok := node.(content.Animation)
	if !ok {
		return nil, fmt.Errorf("cache: node at %q is tagged KindAnimation but does not implement content.Animation", path)
	}
	return desc, nil
}

func (c *cache) LoadFromPath(a animator.Animator, path string) (track.Track, error) {
	desc, err := c.ResourceObject(path)
	if err != nil {
		return nil, err
	}
	return c.Load(a, desc)
}

func (c *cache) LoadDirectory(a animator.Animator, path string) (map[string]track.Track, error) {
	scope, err := content.Resolve(c.root, path, content.KindAny)
	if err != nil {
		return nil, fmt.Errorf("cache: missing directory at %q: %w", path, err)
	}
	return c.LoadContainer(a, scope)
}

func (c *cache) LoadContainer(a animator.Animator, scope content.Node) (map[string]track.Track, error) {
	if scope == nil {
		scope = c.root
	}

	descs := content.Animations(scope)
	out := make(map[string]track.Track, len(descs))
	for _, desc := range descs {
		t, err := c.Load(a, desc)
		if err != nil {
			return nil, fmt.Errorf("cache: failed to load %q: %w", desc.Name(), err)
		}
		out[desc.Name()] = t
	}
	return out, nil
}

func (c *cache) PreloadList(items []loader.Preloadable, progress loader.ProgressFunc) (loader.PreloadResult, bool) {
	return c.forwardPreload(items, progress)
}

func (c *cache) PreloadAll(progress loader.ProgressFunc) (loader.PreloadResult, bool) {
	var items []loader.Preloadable
	for _, desc := range content.Animations(c.root) {
		items = append(items, desc)
	}

	c.mu.RLock()
	entries := make([]*entry, 0, len(c.entries))
	for _, e := range c.entries {
		entries = append(entries, e)
	}
	c.mu.RUnlock()

	for _, e := range entries {
		e.mu.Lock()
		for _, t := range e.tracks {
			items = append(items, t)
		}
		e.mu.Unlock()
	}

	return c.forwardPreload(items, progress)
}

// forwardPreload is the failure-capturing boundary around the bulk preload
// service: errors and panics from the service are converted into a failed
// result and never raised past the cache. Batch preload is advisory, so a
// broken preloader must not crash the caller.
func (c *cache) forwardPreload(items []loader.Preloadable, progress loader.ProgressFunc) (result loader.PreloadResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result = loader.PreloadResult{
				Requested: len(items),
				Err:       fmt.Errorf("cache: preload panicked: %v", r),
			}
			ok = false
			c.logger.Warn("bulk preload panicked", "items", len(items), "panic", r)
		}
	}()

	if c.preloader == nil {
		if len(items) == 0 {
			return loader.PreloadResult{}, true
		}
		return loader.PreloadResult{
			Requested: len(items),
			Err:       errors.New("cache: no preloader configured"),
		}, false
	}

	result, err := c.preloader.PreloadAsync(items, progress)
	if err != nil {
		if result.Err == nil {
			result.Err = err
		}
		c.logger.Warn("bulk preload failed", "items", len(items), "error", err)
		return result, false
	}
	return result, true
}
