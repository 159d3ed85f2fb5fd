package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Popup is floating text shown at a world position.
type Popup struct {
	Text            string
	X, Y            float64
	FramesRemaining int
	Color           color.RGBA
}

// HUDData holds transient HUD messages fed by session events.
type HUDData struct {
	Banner       string
	BannerFrames int
	Popups       []Popup
}

var HUD = donburi.NewComponentType[HUDData]()
