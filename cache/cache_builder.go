package cache

import (
	"log/slog"

	"github.com/KashTheKingYT/AnimTree/content"
	"github.com/KashTheKingYT/AnimTree/loader"
)

// CacheBuilderOption is a functional option for configuring a Cache via New.
type CacheBuilderOption func(*cache)

// WithRoot is an option builder that sets the default content root used by
// path resolution, enumeration, and PreloadAll.
//
// Parameters:
//   - root: the content tree root
//
// Returns:
//   - CacheBuilderOption: a function that applies the root option to a cache
func WithRoot(root content.Node) CacheBuilderOption {
	return func(c *cache) {
		c.root = root
	}
}

// WithPreloader is an option builder that sets the bulk preload service the
// cache forwards PreloadList/PreloadAll batches to.
//
// Parameters:
//   - p: the preload service
//
// Returns:
//   - CacheBuilderOption: a function that applies the preloader option to a cache
func WithPreloader(p loader.Preloader) CacheBuilderOption {
	return func(c *cache) {
		c.preloader = p
	}
}

// WithLogger is an option builder that sets the structured logger used by
// the cache. Defaults to slog.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - CacheBuilderOption: a function that applies the logger option to a cache
func WithLogger(logger *slog.Logger) CacheBuilderOption {
	return func(c *cache) {
		c.logger = logger
	}
}

// WithReleaseOnOverwrite is an option builder that makes Cache release a
// previously cached track before a same-named track replaces it. Off by
// default: the historical behavior replaces without releasing, which can
// leak the old track — every overwrite is logged either way.
//
// Parameters:
//   - release: true to release overwritten tracks
//
// Returns:
//   - CacheBuilderOption: a function that applies the overwrite policy to a cache
func WithReleaseOnOverwrite(release bool) CacheBuilderOption {
	return func(c *cache) {
		c.releaseOnOverwrite = release
	}
}
