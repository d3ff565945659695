package loader

import (
	"fmt"

	"github.com/KashTheKingYT/AnimTree/animator"
	"github.com/KashTheKingYT/AnimTree/content"
	"github.com/KashTheKingYT/AnimTree/track"
)

// TrackLoader materializes animation tracks. It is the external collaborator
// the cache delegates every load to: implementations may fetch, decode, and
// upload however the host engine requires. Loading is synchronous from the
// cache's perspective — a load either completes and returns a Track bound to
// the given animator or fails, with no mid-flight cancellation.
//
// Load failures propagate to the caller untouched; an animator cannot
// function without the track it asked for.
type TrackLoader interface {
	// LoadAnimation produces a Track for the given animator from the given
	// animation descriptor.
	//
	// Parameters:
	//   - a: the animator the track will be bound to
	//   - desc: the animation descriptor resolved from the content tree
	//
	// Returns:
	//   - track.Track: the loaded track
	//   - error: error if the track could not be materialized
	LoadAnimation(a animator.Animator, desc content.Animation) (track.Track, error)
}

// clipLoader is the implementation of the in-memory TrackLoader.
type clipLoader struct {
	onRelease track.ReleaseHook
}

var _ TrackLoader = &clipLoader{}

// NewClipLoader creates a TrackLoader that materializes tracks directly from
// the descriptor's attached clip data, with the given options applied. It
// performs no fetching or decoding — descriptors must carry at least one
// clip. Hosts with engine-side animation data supply their own TrackLoader
// instead.
//
// Parameters:
//   - options: a variadic list of ClipLoaderBuilderOption functions to configure the loader
//
// Returns:
//   - TrackLoader: the newly created loader
func NewClipLoader(options ...ClipLoaderBuilderOption) TrackLoader {
	l := &clipLoader{}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *clipLoader) LoadAnimation(a animator.Animator, desc content.Animation) (track.Track, error) {
	clips := desc.Clips()
	if len(clips) == 0 {
		return nil, fmt.Errorf("loader: animation %q carries no clip data", desc.Name())
	}

	opts := []track.TrackBuilderOption{track.WithClip(clips[0])}
	if l.onRelease != nil {
		opts = append(opts, track.WithReleaseHook(l.onRelease))
	}
	return track.New(desc.Name(), a.ID(), opts...), nil
}
