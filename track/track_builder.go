package track

// TrackBuilderOption is a functional option for configuring a Track via New.
type TrackBuilderOption func(*track)

// WithClip is an option builder that attaches the source clip backing the track.
//
// Parameters:
//   - clip: the clip to attach
//
// Returns:
//   - TrackBuilderOption: a function that applies the clip option to a track
func WithClip(clip *Clip) TrackBuilderOption {
	return func(t *track) {
		t.clip = clip
	}
}

// WithReleaseHook is an option builder that sets the hook invoked exactly
// once when the track is released.
//
// Parameters:
//   - hook: the hook to invoke on release
//
// Returns:
//   - TrackBuilderOption: a function that applies the release hook option to a track
func WithReleaseHook(hook ReleaseHook) TrackBuilderOption {
	return func(t *track) {
		t.onRelease = hook
	}
}
