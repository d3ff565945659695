package content

import (
	"github.com/KashTheKingYT/AnimTree/track"
)

// Kind identifies the type of a Node in the content tree.
type Kind int

const (
	// KindAny matches any node kind during resolution.
	KindAny Kind = iota

	// KindFolder identifies a container node holding named children.
	KindFolder

	// KindAnimation identifies a leaf animation resource node.
	KindAnimation
)

// String returns the human-readable name of the kind.
//
// Returns:
//   - string: "Any", "Folder", or "Animation"
func (k Kind) String() string {
	switch k {
	case KindFolder:
		return "Folder"
	case KindAnimation:
		return "Animation"
	default:
		return "Any"
	}
}

// Node is a single named item in the content hierarchy. The hierarchy is
// owned and populated by the host application; this package only reads it.
// Implementations must be safe for concurrent reads; the tree is assumed
// structurally stable for the duration of a single resolution call.
type Node interface {
	// Name returns the node's identifier, unique among its siblings.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Kind returns the node's kind tag.
	//
	// Returns:
	//   - Kind: KindFolder or KindAnimation
	Kind() Kind

	// Child returns the direct child with the given name, or nil if absent.
	//
	// Parameters:
	//   - name: the child name to look up
	//
	// Returns:
	//   - Node: the matching child or nil
	Child(name string) Node

	// Children returns the node's direct children in insertion order.
	// Leaf nodes return nil.
	//
	// Returns:
	//   - []Node: the direct children
	Children() []Node
}

// folder is the implementation of a container Node.
type folder struct {
	name     string
	children []Node
	byName   map[string]int
}

// Folder is a named container node in the content tree.
type Folder interface {
	Node

	// Add inserts a child node. A child with the same name replaces the
	// existing one in place (last write wins).
	//
	// Parameters:
	//   - child: the node to insert
	//
	// Returns:
	//   - Folder: the folder itself, for chained construction
	Add(child Node) Folder
}

var _ Folder = &folder{}

// NewFolder creates an empty Folder with the given name and options applied.
//
// Parameters:
//   - name: the folder's name
//   - options: a variadic list of FolderBuilderOption functions to configure the folder
//
// Returns:
//   - Folder: the newly created folder
func NewFolder(name string, options ...FolderBuilderOption) Folder {
	f := &folder{
		name:   name,
		byName: make(map[string]int),
	}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *folder) Name() string { return f.name }

func (f *folder) Kind() Kind { return KindFolder }

func (f *folder) Child(name string) Node {
	idx, ok := f.byName[name]
	if !ok {
		return nil
	}
	return f.children[idx]
}

func (f *folder) Children() []Node {
	out := make([]Node, len(f.children))
	copy(out, f.children)
	return out
}

func (f *folder) Add(child Node) Folder {
	if idx, ok := f.byName[child.Name()]; ok {
		f.children[idx] = child
		return f
	}
	f.byName[child.Name()] = len(f.children)
	f.children = append(f.children, child)
	return f
}

// animation is the implementation of the Animation leaf node.
type animation struct {
	name    string
	assetID string
	clips   []*track.Clip
}

// Animation is a leaf resource node describing a loadable animation. The
// surrounding content tree owns it; caches and loaders hold references to
// it and never copy it.
type Animation interface {
	Node

	// AssetID returns the external asset identifier the host's loader uses
	// to materialize the animation, or "" for purely in-memory content.
	//
	// Returns:
	//   - string: the asset identifier
	AssetID() string

	// Clips returns the animation's source clip data. May be empty when the
	// clip data lives behind the host's loader instead.
	//
	// Returns:
	//   - []*track.Clip: the source clips
	Clips() []*track.Clip
}

var _ Animation = &animation{}

// NewAnimation creates an Animation leaf node with the given name and
// options applied.
//
// Parameters:
//   - name: the animation's name
//   - options: a variadic list of AnimationBuilderOption functions to configure the node
//
// Returns:
//   - Animation: the newly created animation node
func NewAnimation(name string, options ...AnimationBuilderOption) Animation {
	a := &animation{name: name}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *animation) Name() string { return a.name }

func (a *animation) Kind() Kind { return KindAnimation }

func (a *animation) Child(string) Node { return nil }

func (a *animation) Children() []Node { return nil }

func (a *animation) AssetID() string { return a.assetID }

func (a *animation) Clips() []*track.Clip {
	out := make([]*track.Clip, len(a.clips))
	copy(out, a.clips)
	return out
}

// Animations returns every Animation node under scope in depth-first
// traversal order, scope included. The order follows the underlying
// hierarchy and is not guaranteed stable across structural changes.
//
// Parameters:
//   - scope: the subtree root to enumerate (nil yields nil)
//
// Returns:
//   - []Animation: all animation nodes under scope
func Animations(scope Node) []Animation {
	if scope == nil {
		return nil
	}
	var out []Animation
	var walk func(n Node)
	walk = func(n Node) {
		if a, ok := n.(Animation); ok {
			out = append(out, a)
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(scope)
	return out
}
