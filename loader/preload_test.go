package loader

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KashTheKingYT/AnimTree/content"
	"github.com/KashTheKingYT/AnimTree/track"
)

// TestPooledPreloaderWarmsDescriptors tests that every descriptor is warmed
// and progress reaches the batch total.
func TestPooledPreloaderWarmsDescriptors(t *testing.T) {
	var mu sync.Mutex
	warmed := make(map[string]int)
	p := NewPooledPreloader(func(item Preloadable) error {
		mu.Lock()
		defer mu.Unlock()
		warmed[item.Name()]++
		return nil
	}, WithWorkers(4))

	items := []Preloadable{
		content.NewAnimation("Walk"),
		content.NewAnimation("Run"),
		content.NewAnimation("Punch"),
	}

	var lastDone, lastTotal int
	result, err := p.PreloadAsync(items, func(done, total int) {
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 3, result.Warmed)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, 3, lastDone)
	assert.Equal(t, 3, lastTotal)
	assert.Equal(t, map[string]int{"Walk": 1, "Run": 1, "Punch": 1}, warmed)
}

// TestPooledPreloaderSkipsResidentTracks tests that already-loaded tracks
// are counted as skipped without invoking the warm function.
func TestPooledPreloaderSkipsResidentTracks(t *testing.T) {
	warmCalls := 0
	var mu sync.Mutex
	p := NewPooledPreloader(func(Preloadable) error {
		mu.Lock()
		defer mu.Unlock()
		warmCalls++
		return nil
	}, WithWorkers(2))

	items := []Preloadable{
		content.NewAnimation("Walk"),
		track.New("Run", uuid.New()),
		track.New("Punch", uuid.New()),
	}

	result, err := p.PreloadAsync(items, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Warmed)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, warmCalls)
}

// TestPooledPreloaderFirstErrorWins tests failure reporting.
func TestPooledPreloaderFirstErrorWins(t *testing.T) {
	boom := errors.New("fetch failed")
	p := NewPooledPreloader(func(item Preloadable) error {
		if item.Name() == "Broken" {
			return boom
		}
		return nil
	}, WithWorkers(1))

	items := []Preloadable{
		content.NewAnimation("Walk"),
		content.NewAnimation("Broken"),
		content.NewAnimation("Run"),
	}

	result, err := p.PreloadAsync(items, nil)
	require.Error(t, err)
	assert.ErrorIs(t, result.Err, boom)
	// The rest of the batch still completes.
	assert.Equal(t, 3, result.Warmed)
}

// TestPooledPreloaderEmptyBatch tests the benign empty case.
func TestPooledPreloaderEmptyBatch(t *testing.T) {
	p := NewPooledPreloader(nil)
	result, err := p.PreloadAsync(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, result.Requested)
	assert.NoError(t, result.Err)
}

// TestPooledPreloaderNilWarm tests that a nil warm function treats items as
// instantly warm.
func TestPooledPreloaderNilWarm(t *testing.T) {
	p := NewPooledPreloader(nil, WithWorkers(2))
	result, err := p.PreloadAsync([]Preloadable{content.NewAnimation("Walk")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Warmed)
}
