package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// InputData is the command surface consumed once per tick by the simulation.
type InputData struct {
	Joystick   dmath.Vec2 // magnitude 0..1
	Fire       bool       // fire at FireTarget this tick
	FireTarget dmath.Vec2
}

var Input = donburi.NewComponentType[InputData]()
