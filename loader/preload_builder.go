package loader

// PreloaderBuilderOption is a functional option for configuring a pooled
// preloader via NewPooledPreloader.
type PreloaderBuilderOption func(*pooledPreloader)

// WithWorkers is an option builder that sets the number of worker goroutines
// used to warm items. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - PreloaderBuilderOption: a function that applies the worker count option to the preloader
func WithWorkers(n int) PreloaderBuilderOption {
	return func(p *pooledPreloader) {
		if n < 1 {
			n = 1
		}
		p.workers = n
	}
}
