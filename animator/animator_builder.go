package animator

import "github.com/google/uuid"

// AnimatorBuilderOption is a functional option for configuring an Animator via New.
type AnimatorBuilderOption func(*animator)

// WithID is an option builder that overrides the generated ID. Hosts that
// already assign stable identities to their entities use this to keep the
// cache keyed by the same identity.
//
// Parameters:
//   - id: the ID to assign
//
// Returns:
//   - AnimatorBuilderOption: a function that applies the ID option to an animator
func WithID(id uuid.UUID) AnimatorBuilderOption {
	return func(a *animator) {
		a.id = id
	}
}
