package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// BurstData is a short-lived explosion ring left where an enemy died
type BurstData struct {
	X, Y            float64
	FramesRemaining int
	Color           color.RGBA
}

var Burst = donburi.NewComponentType[BurstData]()
