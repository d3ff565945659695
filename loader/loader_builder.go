package loader

import "github.com/KashTheKingYT/AnimTree/track"

// ClipLoaderBuilderOption is a functional option for configuring a clip loader via NewClipLoader.
type ClipLoaderBuilderOption func(*clipLoader)

// WithReleaseHook is an option builder that sets the release hook attached
// to every track the loader produces.
//
// Parameters:
//   - hook: the hook to attach to produced tracks
//
// Returns:
//   - ClipLoaderBuilderOption: a function that applies the release hook option to the loader
func WithReleaseHook(hook track.ReleaseHook) ClipLoaderBuilderOption {
	return func(l *clipLoader) {
		l.onRelease = hook
	}
}
