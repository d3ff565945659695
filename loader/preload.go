package loader

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/KashTheKingYT/AnimTree/track"
)

// Preloadable is anything the bulk preload service accepts: an animation
// descriptor still to be warmed, or an already-resident track. Both
// content.Animation and track.Track satisfy it.
type Preloadable interface {
	// Name returns the item's animation name.
	//
	// Returns:
	//   - string: the item name
	Name() string
}

// ProgressFunc observes preload progress. It is called after each item
// completes, with the number of items finished so far and the batch total.
type ProgressFunc func(done, total int)

// WarmFunc performs the warm-up work for a single not-yet-resident item,
// e.g. prefetching the asset behind a descriptor. A nil WarmFunc treats
// every item as instantly warm.
type WarmFunc func(item Preloadable) error

// PreloadResult summarizes a bulk preload batch.
type PreloadResult struct {
	// Requested is the total number of items in the batch.
	Requested int

	// Warmed is the number of items that were warmed up by this batch.
	Warmed int

	// Skipped is the number of items that were already resident
	// (loaded tracks forwarded by PreloadAll).
	Skipped int

	// Err is the first warm-up failure, or nil when the batch succeeded.
	Err error
}

// Preloader is the bulk preload service the cache forwards batches to. A
// call may suspend the caller until the whole batch completes or fails.
// Implementations are free to return errors or panic — the cache wraps
// every call in a failure-capturing boundary, so neither escapes to the
// cache's callers.
type Preloader interface {
	// PreloadAsync warms every item in the batch, reporting progress as
	// items complete.
	//
	// Parameters:
	//   - items: the descriptors and tracks to warm
	//   - progress: optional per-item completion callback (may be nil)
	//
	// Returns:
	//   - PreloadResult: the batch summary
	//   - error: the first warm-up failure, if any
	PreloadAsync(items []Preloadable, progress ProgressFunc) (PreloadResult, error)
}

// pooledPreloader is the implementation of the Preloader interface backed by
// a dynamic worker pool.
type pooledPreloader struct {
	warm    WarmFunc
	workers int

	// pool manages a bounded set of reusable goroutines shared across
	// batches, avoiding per-batch goroutine spawn/teardown overhead.
	pool worker.DynamicWorkerPool
}

var _ Preloader = &pooledPreloader{}

// NewPooledPreloader creates a Preloader that fans warm-up work across a
// reusable worker pool with the given options applied. Already-resident
// tracks are skipped (and counted) without invoking the warm function.
//
// Parameters:
//   - warm: the per-item warm-up function (may be nil for a no-op warmer)
//   - options: a variadic list of PreloaderBuilderOption functions to configure the preloader
//
// Returns:
//   - Preloader: the newly created preloader
func NewPooledPreloader(warm WarmFunc, options ...PreloaderBuilderOption) Preloader {
	p := &pooledPreloader{
		warm:    warm,
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(p)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	// Queue size of 256 accommodates typical batch sizes with headroom.
	p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	return p
}

func (p *pooledPreloader) PreloadAsync(items []Preloadable, progress ProgressFunc) (PreloadResult, error) {
	result := PreloadResult{Requested: len(items)}
	if len(items) == 0 {
		return result, nil
	}

	// mu serializes completion bookkeeping and progress callbacks so the
	// reported done count is monotonic.
	var mu sync.Mutex
	var wg sync.WaitGroup
	done := 0
	total := len(items)

	complete := func(warmed bool, err error) {
		mu.Lock()
		defer mu.Unlock()
		done++
		if warmed {
			result.Warmed++
		} else {
			result.Skipped++
		}
		if err != nil && result.Err == nil {
			result.Err = err
		}
		if progress != nil {
			progress(done, total)
		}
	}

	taskID := 0
	for _, item := range items {
		// Loaded tracks are already resident; count them without warming.
		if _, resident := item.(track.Track); resident {
			complete(false, nil)
			continue
		}

		wg.Add(1)
		itemCap := item // capture for closure
		id := taskID
		taskID++
		p.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				var err error
				if p.warm != nil {
					err = p.warm(itemCap)
				}
				complete(true, err)
				return nil, err
			},
		})
	}
	wg.Wait()

	return result, result.Err
}
