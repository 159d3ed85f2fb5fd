package systems

import (
	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateControls polls raw input and updates the Controls component.
// Must run BEFORE UpdateCommands in the system order.
func UpdateControls(ecs *ecs.ECS) {
	controls := getOrCreateControls(ecs)

	// Swap buffers: current becomes previous, then zero out current
	controls.Previous = controls.Current
	controls.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, mouseUsed, gamepadUsed bool

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				controls.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				controls.Current[actionID] = true
				mouseUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					controls.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	controls.Cursor = dmath.Vec2{X: float64(cx), Y: float64(cy)}

	controls.Stick, controls.Aim = getAnalogSticks(gamepadIDs)
	if !gamemath.IsZero(controls.Stick) || !gamemath.IsZero(controls.Aim) {
		gamepadUsed = true
	}

	// Gamepad takes priority, then mouse, then keyboard
	switch {
	case gamepadUsed:
		controls.LastInputMethod = components.InputGamepad
	case mouseUsed:
		controls.LastInputMethod = components.InputMouse
	case keyboardUsed:
		controls.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogSticks reads both sticks from the first gamepad that moves them past the deadzone.
func getAnalogSticks(gamepads []ebiten.GamepadID) (move, aim dmath.Vec2) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if gamemath.IsZero(move) && gamemath.Length(dmath.Vec2{X: lx, Y: ly}) > deadzone {
			move = gamemath.ClampLength(dmath.Vec2{X: lx, Y: ly}, 1)
		}

		rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if gamemath.IsZero(aim) && gamemath.Length(dmath.Vec2{X: rx, Y: ry}) > deadzone {
			aim = gamemath.Normalize(dmath.Vec2{X: rx, Y: ry})
		}
	}

	return
}

// getOrCreateControls returns the singleton Controls component, creating if needed
func getOrCreateControls(ecs *ecs.ECS) *components.ControlsData {
	entry, ok := components.Controls.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Controls))
		// Zero-value ControlsData is correct (all bools false)
	}
	return components.Controls.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(controls *components.ControlsData, id cfg.ActionID) components.ActionState {
	curr := controls.Current[id]
	prev := controls.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// KeyboardJoystick turns the four movement actions into a unit-length direction.
func KeyboardJoystick(controls *components.ControlsData) dmath.Vec2 {
	var v dmath.Vec2
	if controls.Current[cfg.ActionMoveLeft] {
		v.X--
	}
	if controls.Current[cfg.ActionMoveRight] {
		v.X++
	}
	if controls.Current[cfg.ActionMoveUp] {
		v.Y--
	}
	if controls.Current[cfg.ActionMoveDown] {
		v.Y++
	}
	return gamemath.Normalize(v)
}

// UpdateCommands turns the polled controls into the simulation's per-tick commands.
// It runs regardless of pause so the pause toggle keeps working.
func UpdateCommands(ecs *ecs.ECS) {
	controls := getOrCreateControls(ecs)
	session := getSession(ecs.World)
	if session == nil {
		return
	}

	if GetAction(controls, cfg.ActionPause).JustPressed {
		TogglePause(ecs.World)
	}

	input := getInput(ecs.World)
	if input == nil {
		return
	}

	input.Joystick = controls.Stick
	if gamemath.IsZero(input.Joystick) {
		input.Joystick = KeyboardJoystick(controls)
	}

	player, ok := getPlayerCenter(ecs.World)
	if !ok {
		return
	}

	switch {
	case !gamemath.IsZero(controls.Aim):
		input.Fire = true
		input.FireTarget = gamemath.Add(player, gamemath.Scale(controls.Aim, cfg.Input.AimDistance))
	case GetAction(controls, cfg.ActionFire).Pressed:
		input.Fire = true
		input.FireTarget = controls.Cursor
	}
}

// ActionJustPressed reports whether the action went down this frame in e's controls.
func ActionJustPressed(e *ecs.ECS, id cfg.ActionID) bool {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		return false
	}
	return GetAction(components.Controls.Get(entry), id).JustPressed
}
