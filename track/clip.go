package track

// DefaultTicksPerSecond is the playback tick rate assumed for clips that do
// not specify one.
const DefaultTicksPerSecond float32 = 30

// Clip represents a single animation (walk, run, attack, etc.) as CPU-side
// source data. Clips arrive already decoded — this module indexes and caches
// them, it never parses container formats.
type Clip struct {
	// Name is the animation identifier.
	Name string

	// Duration is the total length of the animation in seconds.
	Duration float32

	// TicksPerSecond is the sample rate of the animation.
	TicksPerSecond float32

	// Channels contains keyframe data for each animated target.
	Channels []Channel
}

// Channel contains keyframe data for a single animated target (a bone or
// object within the rig).
type Channel struct {
	// Target is the index of the rig element this channel animates.
	Target int32

	// PositionKeys are keyframes for translation.
	PositionKeys []VectorKeyframe

	// RotationKeys are keyframes for rotation (quaternion).
	RotationKeys []QuaternionKeyframe

	// ScaleKeys are keyframes for scale.
	ScaleKeys []VectorKeyframe
}

// VectorKeyframe stores a 3D vector value at a specific time.
type VectorKeyframe struct {
	// Time is the keyframe timestamp in seconds.
	Time float32

	// Value is the 3D vector value at this keyframe.
	Value [3]float32
}

// QuaternionKeyframe stores a quaternion rotation at a specific time.
type QuaternionKeyframe struct {
	// Time is the keyframe timestamp in seconds.
	Time float32

	// Value is the quaternion value at this keyframe (x, y, z, w).
	Value [4]float32
}
