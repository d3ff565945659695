package content

import (
	"github.com/KashTheKingYT/AnimTree/track"
)

// FolderBuilderOption is a functional option for configuring a Folder via NewFolder.
type FolderBuilderOption func(*folder)

// WithChildren is an option builder that adds initial children to the folder.
// Children with duplicate names follow the same last-write-wins rule as Add.
//
// Parameters:
//   - children: the nodes to insert
//
// Returns:
//   - FolderBuilderOption: a function that applies the children option to a folder
func WithChildren(children ...Node) FolderBuilderOption {
	return func(f *folder) {
		for _, child := range children {
			f.Add(child)
		}
	}
}

// AnimationBuilderOption is a functional option for configuring an Animation via NewAnimation.
type AnimationBuilderOption func(*animation)

// WithAssetID is an option builder that sets the external asset identifier.
//
// Parameters:
//   - assetID: the host-side asset identifier
//
// Returns:
//   - AnimationBuilderOption: a function that applies the asset ID option to an animation
func WithAssetID(assetID string) AnimationBuilderOption {
	return func(a *animation) {
		a.assetID = assetID
	}
}

// WithClips is an option builder that attaches source clip data to the animation.
//
// Parameters:
//   - clips: the clips the animation carries
//
// Returns:
//   - AnimationBuilderOption: a function that applies the clips option to an animation
func WithClips(clips ...*track.Clip) AnimationBuilderOption {
	return func(a *animation) {
		a.clips = append(a.clips, clips...)
	}
}
