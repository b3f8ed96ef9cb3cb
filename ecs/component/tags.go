package component

// PlayerTag marks the player entity. Exactly one exists at runtime.
type PlayerTag struct{}

var PlayerTagKind = NewComponent[PlayerTag]()

// CameraTag marks the camera entity. Exactly one exists at runtime.
type CameraTag struct{}

var CameraTagKind = NewComponent[CameraTag]()
