package component

// Locomotion holds the player's movement tuning, loaded from the player
// prefab. All fields are physically meaningful and validated non-zero on
// load (except JumpShortenGravity, where zero disables jump shortening).
type Locomotion struct {
	WalkSpeed          float32
	FloatHeight        float32
	JumpHeight         float32
	JumpShortenGravity float32
}

var LocomotionKind = NewComponent[Locomotion]()
