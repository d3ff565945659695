package track

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// track is the implementation of the Track interface.
type track struct {
	name       string
	animatorID uuid.UUID
	clip       *Clip
	released   atomic.Bool
	onRelease  ReleaseHook
}

// ReleaseHook observes a track's release. Hosts use it to free engine-side
// resources tied to the track; tests use it as a release marker.
type ReleaseHook func(t Track)

// Track is a loaded-and-ready animation handle bound to exactly one
// animator. Tracks are produced by a loader.TrackLoader and are never shared
// across animators. A track's lifetime ends with Release, called either
// explicitly or by the cache when the owning animator is destroyed.
type Track interface {
	// Name returns the animation name the track was loaded from.
	//
	// Returns:
	//   - string: the track name
	Name() string

	// AnimatorID returns the ID of the animator this track was produced for.
	//
	// Returns:
	//   - uuid.UUID: the owning animator's ID
	AnimatorID() uuid.UUID

	// Clip returns the source clip backing this track, or nil when the host
	// loader materialized the track from external data.
	//
	// Returns:
	//   - *Clip: the backing clip or nil
	Clip() *Clip

	// Length returns the track's duration in seconds, 0 when no clip is attached.
	//
	// Returns:
	//   - float32: the duration in seconds
	Length() float32

	// Released reports whether Release has been called.
	//
	// Returns:
	//   - bool: true once released
	Released() bool

	// Release frees the track. It is one-shot: the first call runs the
	// release hook, subsequent calls are no-ops.
	Release()
}

var _ Track = &track{}

// New creates a Track bound to the given animator ID with the given options
// applied.
//
// Parameters:
//   - name: the animation name
//   - animatorID: the ID of the animator the track belongs to
//   - options: a variadic list of TrackBuilderOption functions to configure the track
//
// Returns:
//   - Track: the newly created track
func New(name string, animatorID uuid.UUID, options ...TrackBuilderOption) Track {
	t := &track{
		name:       name,
		animatorID: animatorID,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *track) Name() string { return t.name }

func (t *track) AnimatorID() uuid.UUID { return t.animatorID }

func (t *track) Clip() *Clip { return t.clip }

func (t *track) Length() float32 {
	if t.clip == nil {
		return 0
	}
	return t.clip.Duration
}

func (t *track) Released() bool { return t.released.Load() }

func (t *track) Release() {
	if !t.released.CompareAndSwap(false, true) {
		return
	}
	if t.onRelease != nil {
		t.onRelease(t)
	}
}
