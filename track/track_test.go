package track

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrackAccessors tests the basic field plumbing.
func TestTrackAccessors(t *testing.T) {
	id := uuid.New()
	clip := &Clip{Name: "Walk", Duration: 1.5, TicksPerSecond: DefaultTicksPerSecond}

	tr := New("Walk", id, WithClip(clip))
	assert.Equal(t, "Walk", tr.Name())
	assert.Equal(t, id, tr.AnimatorID())
	assert.Same(t, clip, tr.Clip())
	assert.InDelta(t, 1.5, tr.Length(), 1e-6)
	assert.False(t, tr.Released())
}

// TestTrackLengthWithoutClip tests that a clipless track reports zero length.
func TestTrackLengthWithoutClip(t *testing.T) {
	tr := New("Bare", uuid.New())
	assert.Nil(t, tr.Clip())
	assert.Zero(t, tr.Length())
}

// TestTrackReleaseOnce tests that the release hook fires exactly once no
// matter how many times Release is called.
func TestTrackReleaseOnce(t *testing.T) {
	releases := 0
	tr := New("Walk", uuid.New(), WithReleaseHook(func(released Track) {
		releases++
		assert.Equal(t, "Walk", released.Name())
	}))

	tr.Release()
	tr.Release()
	tr.Release()

	require.True(t, tr.Released())
	assert.Equal(t, 1, releases)
}

// TestTrackReleaseWithoutHook tests that Release is safe with no hook set.
func TestTrackReleaseWithoutHook(t *testing.T) {
	tr := New("Walk", uuid.New())
	tr.Release()
	assert.True(t, tr.Released())
}
