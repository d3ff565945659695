package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KashTheKingYT/AnimTree/track"
)

// testTree builds the hierarchy used across resolution tests:
//
//	Content
//	├── Walk            (animation)
//	└── Combat          (folder)
//	    ├── Punch       (animation)
//	    └── Kicks       (folder)
//	        └── High    (animation)
func testTree() Node {
	return NewFolder("Content", WithChildren(
		NewAnimation("Walk", WithClips(&track.Clip{Name: "Walk", Duration: 1.0})),
		NewFolder("Combat", WithChildren(
			NewAnimation("Punch", WithClips(&track.Clip{Name: "Punch", Duration: 0.8})),
			NewFolder("Kicks", WithChildren(
				NewAnimation("High"),
			)),
		)),
	))
}

// TestResolveSingleSegment tests resolving a direct child by name.
func TestResolveSingleSegment(t *testing.T) {
	root := testTree()

	node, err := Resolve(root, "Walk", KindAnimation)
	require.NoError(t, err)
	assert.Equal(t, "Walk", node.Name())
	assert.Equal(t, KindAnimation, node.Kind())
}

// TestResolveNestedPath tests descending multiple segments.
func TestResolveNestedPath(t *testing.T) {
	root := testTree()

	node, err := Resolve(root, "Combat/Kicks/High", KindAnimation)
	require.NoError(t, err)
	assert.Equal(t, "High", node.Name())
}

// TestResolveDeterminism tests that repeated resolution of an unchanged tree
// returns the identical node.
func TestResolveDeterminism(t *testing.T) {
	root := testTree()

	first, err := Resolve(root, "Combat/Punch", KindAnimation)
	require.NoError(t, err)
	second, err := Resolve(root, "Combat/Punch", KindAnimation)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

// TestResolveMissingSegments tests that every absent prefix of a path fails
// with NotFound.
func TestResolveMissingSegments(t *testing.T) {
	root := testTree()

	for _, path := range []string{"Nope", "Nope/Punch", "Combat/Nope", "Combat/Punch/Deeper"} {
		_, err := Resolve(root, path, KindAny)
		require.Error(t, err, "path %q", path)
		assert.ErrorIs(t, err, ErrNotFound, "path %q", path)
	}
}

// TestResolveKindMismatch tests that a resolved terminal node of the wrong
// kind is a NotFound, with the mismatch details populated.
func TestResolveKindMismatch(t *testing.T) {
	root := testTree()

	_, err := Resolve(root, "Combat", KindAnimation)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.True(t, nfe.Mismatch)
	assert.Equal(t, KindAnimation, nfe.Want)
	assert.Equal(t, KindFolder, nfe.Got)
}

// TestResolveKindAny tests that KindAny accepts any terminal kind.
func TestResolveKindAny(t *testing.T) {
	root := testTree()

	folder, err := Resolve(root, "Combat", KindAny)
	require.NoError(t, err)
	assert.Equal(t, KindFolder, folder.Kind())

	anim, err := Resolve(root, "Walk", KindAny)
	require.NoError(t, err)
	assert.Equal(t, KindAnimation, anim.Kind())
}

// TestResolveDegenerateInputs tests nil roots and empty segments.
func TestResolveDegenerateInputs(t *testing.T) {
	root := testTree()

	_, err := Resolve(nil, "Walk", KindAny)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve(root, "", KindAny)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Resolve(root, "Combat//Punch", KindAny)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestNotFoundErrorSegment tests that the error names the failing segment.
func TestNotFoundErrorSegment(t *testing.T) {
	root := testTree()

	_, err := Resolve(root, "Combat/Missing", KindAny)
	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "Combat/Missing", nfe.Path)
	assert.Equal(t, "Missing", nfe.Segment)
	assert.False(t, nfe.Mismatch)
}
