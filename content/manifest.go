package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KashTheKingYT/AnimTree/track"
	"github.com/pelletier/go-toml/v2"
)

// manifest is the TOML document shape accepted by LoadManifest.
type manifest struct {
	Root       string              `toml:"root"`
	Animations []manifestAnimation `toml:"animation"`
}

// manifestAnimation is one [[animation]] entry in a manifest.
type manifestAnimation struct {
	Path           string  `toml:"path"`
	Asset          string  `toml:"asset"`
	Duration       float32 `toml:"duration"`
	TicksPerSecond float32 `toml:"ticks_per_second"`
}

// LoadManifest builds a content tree from a TOML manifest. The manifest is
// an index of the tree — it names animations and where they live, it does
// not carry keyframe data. Shape:
//
//	root = "Content"
//
//	[[animation]]
//	path = "Combat/Punch"
//	asset = "asset://combat/punch"
//	duration = 0.8
//	ticks_per_second = 30
//
// Intermediate folders are created on demand from the path segments. Each
// entry produces an Animation node carrying a single metadata-only Clip
// named after the terminal segment.
//
// Parameters:
//   - r: the reader providing the TOML document
//
// Returns:
//   - Node: the root folder of the constructed tree
//   - error: error if the document cannot be parsed or an entry is invalid
func LoadManifest(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("content: failed to read manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("content: failed to parse manifest: %w", err)
	}

	rootName := m.Root
	if rootName == "" {
		rootName = "Content"
	}
	root := NewFolder(rootName)

	for _, entry := range m.Animations {
		if entry.Path == "" {
			return nil, fmt.Errorf("content: manifest animation entry missing path")
		}
		segments := strings.Split(entry.Path, PathSeparator)
		for _, segment := range segments {
			if segment == "" {
				return nil, fmt.Errorf("content: manifest path %q has an empty segment", entry.Path)
			}
		}

		// Walk or create intermediate folders for all but the last segment.
		parent := root
		for _, segment := range segments[:len(segments)-1] {
			child := parent.Child(segment)
			if child == nil {
				next := NewFolder(segment)
				parent.Add(next)
				parent = next
				continue
			}
			childFolder, ok := child.(Folder)
			if !ok {
				return nil, fmt.Errorf("content: manifest path %q descends through non-folder %q", entry.Path, segment)
			}
			parent = childFolder
		}

		name := segments[len(segments)-1]
		ticks := entry.TicksPerSecond
		if ticks == 0 {
			ticks = track.DefaultTicksPerSecond
		}
		parent.Add(NewAnimation(name,
			WithAssetID(entry.Asset),
			WithClips(&track.Clip{
				Name:           name,
				Duration:       entry.Duration,
				TicksPerSecond: ticks,
			}),
		))
	}

	return root, nil
}

// LoadManifestFile builds a content tree from a TOML manifest on disk.
// See LoadManifest for the document shape.
//
// Parameters:
//   - path: the manifest file path
//
// Returns:
//   - Node: the root folder of the constructed tree
//   - error: error if the file cannot be opened or parsed
func LoadManifestFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: failed to open manifest %s: %w", path, err)
	}
	defer f.Close()
	return LoadManifest(f)
}
