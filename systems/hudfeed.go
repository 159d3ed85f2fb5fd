package systems

import (
	"fmt"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/yohamta/donburi"
)

// HUDFeed turns session events into banners and floating score popups.
type HUDFeed struct {
	messages.NopListener
	world donburi.World
}

// NewHUDFeed returns a listener writing into the HUD of w's session.
func NewHUDFeed(w donburi.World) *HUDFeed {
	return &HUDFeed{world: w}
}

func (f *HUDFeed) banner(text string) {
	hud := getHUD(f.world)
	if hud == nil {
		return
	}
	hud.Banner = text
	hud.BannerFrames = cfg.Effects.BannerFrames
}

func (f *HUDFeed) EnemyDestroyed(e messages.KillEvent) {
	hud := getHUD(f.world)
	if hud == nil {
		return
	}
	hud.Popups = append(hud.Popups, components.Popup{
		Text:            fmt.Sprintf("+%d", e.Points),
		X:               e.X,
		Y:               e.Y,
		FramesRemaining: cfg.Effects.PopupFrames,
		Color:           cfg.Yellow,
	})
}

func (f *HUDFeed) LevelUp(e messages.LevelUpEvent) {
	f.banner(fmt.Sprintf("LEVEL %d", e.Level))
}

func (f *HUDFeed) PowerUpCollected(e messages.PowerUpEvent) {
	f.banner(fmt.Sprintf("%s!", e.Type))
}

func (f *HUDFeed) PowerUpExpired(e messages.PowerUpEvent) {
	f.banner(fmt.Sprintf("%s ended", e.Type))
}
