package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the collision box.
func (o *ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the collision box so its midpoint is at c and refreshes its cells.
func (o *ObjectData) SetCenter(c dmath.Vec2) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
