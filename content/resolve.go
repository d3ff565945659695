package content

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator delimits segments in a resolution path.
const PathSeparator = "/"

// ErrNotFound is the sentinel matched by every resolution failure.
// Use errors.Is(err, content.ErrNotFound) to detect it, or errors.As with
// *NotFoundError for the failing segment details.
var ErrNotFound = errors.New("content: not found")

// NotFoundError reports a failed path resolution: a missing segment or a
// kind mismatch at the terminal node. Resolution is atomic, so the error
// carries the full requested path plus the exact segment that failed —
// never a partial match.
type NotFoundError struct {
	// Path is the full path that was requested.
	Path string

	// Segment is the path segment that failed to resolve, or the terminal
	// segment on a kind mismatch.
	Segment string

	// Want is the kind the caller required (KindAny when unconstrained).
	Want Kind

	// Got is the kind actually found at the terminal segment, meaningful
	// only when the failure is a kind mismatch.
	Got Kind

	// Mismatch is true when every segment resolved but the terminal node
	// had the wrong kind.
	Mismatch bool
}

func (e *NotFoundError) Error() string {
	if e.Mismatch {
		return fmt.Sprintf("content: %q resolved to a %s, want %s", e.Path, e.Got, e.Want)
	}
	return fmt.Sprintf("content: %q has no child %q", e.Path, e.Segment)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Resolve descends the content tree from root along a slash-delimited path,
// one descend-by-name step per segment, and returns the terminal node.
// When kind is not KindAny the terminal node must have that kind.
//
// Resolution is a pure read and is atomic: it yields either the fully
// resolved, kind-checked node or a *NotFoundError — never a dangling
// intermediate. The tree must be structurally stable for the duration of
// the call.
//
// Parameters:
//   - root: the node to start descending from
//   - path: slash-delimited segment names, e.g. "Combat/Punch"
//   - kind: the required terminal kind, or KindAny to accept anything
//
// Returns:
//   - Node: the resolved node
//   - error: a *NotFoundError if any segment is absent or the terminal kind mismatches
func Resolve(root Node, path string, kind Kind) (Node, error) {
	if root == nil {
		return nil, &NotFoundError{Path: path, Segment: path, Want: kind}
	}

	current := root
	for _, segment := range strings.Split(path, PathSeparator) {
		if segment == "" {
			return nil, &NotFoundError{Path: path, Segment: segment, Want: kind}
		}
		next := current.Child(segment)
		if next == nil {
			return nil, &NotFoundError{Path: path, Segment: segment, Want: kind}
		}
		current = next
	}

	if kind != KindAny && current.Kind() != kind {
		return nil, &NotFoundError{
			Path:     path,
			Segment:  current.Name(),
			Want:     kind,
			Got:      current.Kind(),
			Mismatch: true,
		}
	}
	return current, nil
}
