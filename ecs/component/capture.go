package component

// CursorCapture is the process-wide capture-mode flag, carried on the player
// entity so systems reach it through queries instead of ambient globals.
// While false, look input is suppressed; movement and jump stay live.
type CursorCapture struct {
	Captured bool
}

var CursorCaptureKind = NewComponent[CursorCapture]()
