package component

// MouseDelta is one pointer-motion event in device units.
type MouseDelta struct {
	DX float32
	DY float32
}

// Input is the per-frame input snapshot. The input system rewrites it at the
// start of every frame; everything downstream treats it as read-only.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool

	// TogglePressed is edge-triggered: true only on the frame the capture
	// toggle key went down.
	TogglePressed bool

	// Deltas holds the frame's pointer-motion events in arrival order. The
	// look controller folds them sequentially so the pitch clamp applies at
	// every intermediate step.
	Deltas []MouseDelta
}

var InputKind = NewComponent[Input]()
