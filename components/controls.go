package components

import (
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ControlsData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type ControlsData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	Stick  dmath.Vec2 // left analog stick past the deadzone, zero otherwise
	Aim    dmath.Vec2 // right analog stick past the deadzone, zero otherwise
	Cursor dmath.Vec2 // mouse position in arena coordinates
}

var Controls = donburi.NewComponentType[ControlsData]()
