package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// FacingAngle returns the rotation that points a sprite drawn facing up along dir.
func FacingAngle(dir dmath.Vec2) float64 {
	return math.Atan2(dir.Y, dir.X) - math.Pi/2
}

// HeadingAngle returns the rotation of a projectile sprite travelling along dir.
func HeadingAngle(dir dmath.Vec2) float64 {
	return math.Atan2(dir.Y, dir.X) + math.Pi/2
}

// Steer moves current toward target by factor of the raw angular difference.
// The difference is not wrapped, so a turn across ±π takes the long way round.
func Steer(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// PolarOffset returns the point at distance r and angle theta from origin.
func PolarOffset(origin dmath.Vec2, r, theta float64) dmath.Vec2 {
	return dmath.Vec2{X: origin.X + r*math.Cos(theta), Y: origin.Y + r*math.Sin(theta)}
}
