package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
root = "Content"

[[animation]]
path = "Walk"
asset = "asset://locomotion/walk"
duration = 1.0

[[animation]]
path = "Combat/Punch"
asset = "asset://combat/punch"
duration = 0.8
ticks_per_second = 60

[[animation]]
path = "Combat/Kicks/High"
duration = 1.1
`

// TestLoadManifest tests building a resolvable tree from a TOML manifest.
func TestLoadManifest(t *testing.T) {
	root, err := LoadManifest(strings.NewReader(sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, "Content", root.Name())

	node, err := Resolve(root, "Combat/Punch", KindAnimation)
	require.NoError(t, err)
	punch := node.(Animation)
	assert.Equal(t, "asset://combat/punch", punch.AssetID())
	require.Len(t, punch.Clips(), 1)
	assert.InDelta(t, 0.8, punch.Clips()[0].Duration, 1e-6)
	assert.InDelta(t, 60, punch.Clips()[0].TicksPerSecond, 1e-6)

	_, err = Resolve(root, "Combat/Kicks/High", KindAnimation)
	require.NoError(t, err)

	assert.Len(t, Animations(root), 3)
}

// TestLoadManifestDefaults tests the default root name and tick rate.
func TestLoadManifestDefaults(t *testing.T) {
	root, err := LoadManifest(strings.NewReader("[[animation]]\npath = \"Idle\"\nduration = 2.0\n"))
	require.NoError(t, err)
	assert.Equal(t, "Content", root.Name())

	node, err := Resolve(root, "Idle", KindAnimation)
	require.NoError(t, err)
	clip := node.(Animation).Clips()[0]
	assert.InDelta(t, 30, clip.TicksPerSecond, 1e-6)
}

// TestLoadManifestInvalid tests rejection of malformed documents and entries.
func TestLoadManifestInvalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad toml", "[[animation]\npath ="},
		{"missing path", "[[animation]]\nduration = 1.0"},
		{"empty segment", "[[animation]]\npath = \"Combat//Punch\""},
		{"descends through animation", "[[animation]]\npath = \"Walk\"\n\n[[animation]]\npath = \"Walk/Sub\""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadManifest(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}
