package systems

import (
	"fmt"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/fonts"
	"github.com/automoto/pixelstrike/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders health, score, level progress, active buffs, banners and score popups.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	session := getSession(ecs.World)
	difficulty := getDifficulty(ecs.World)
	if session == nil || difficulty == nil {
		return
	}
	ui := cfg.UI
	regular := fonts.Regular.Get()
	small := fonts.Small.Get()
	m := float32(ui.Margin)

	// Health bar
	current, maxHP := 0, cfg.Player.Health
	if p, ok := getPlayer(ecs.World); ok {
		hp := components.Health.Get(p)
		current, maxHP = max(0, hp.Current), hp.Max
	}
	vector.FillRect(screen, m, m, float32(ui.HealthBarWidth), float32(ui.HealthBarHeight), ui.HealthBarBgColor, false)
	ratio := float32(current) / float32(maxHP)
	vector.FillRect(screen, m, m, float32(ui.HealthBarWidth)*ratio, float32(ui.HealthBarHeight), ui.HealthBarFgColor, false)
	text.Draw(screen, fmt.Sprintf("%d/%d", current, maxHP), small, int(m+float32(ui.HealthBarWidth)+6), int(m)+11, ui.TextColor)

	// Score and level, top right
	w := screen.Bounds().Dx()
	score := fmt.Sprintf("SCORE %d", session.Score)
	high := fmt.Sprintf("BEST %d", max(session.HighScore, session.Score))
	text.Draw(screen, score, regular, w-int(m)-textWidth(score, regular), int(m)+14, ui.TextColor)
	text.Draw(screen, high, small, w-int(m)-textWidth(high, small), int(m)+30, ui.TextColor)

	level := fmt.Sprintf("LEVEL %d  %s  NEXT %d", difficulty.Level, difficulty.Description(), difficulty.NextLevelScore())
	text.Draw(screen, level, small, int(m), int(m)+int(ui.HealthBarHeight)+18, ui.TextColor)
	progress := float32(gamemath.Clamp(difficulty.ProgressToNextLevel(), 0, 1))
	py := m + float32(ui.HealthBarHeight) + 24
	vector.FillRect(screen, m, py, float32(ui.HealthBarWidth), 4, ui.HealthBarBgColor, false)
	vector.FillRect(screen, m, py, float32(ui.HealthBarWidth)*progress, 4, cfg.Yellow, false)

	drawActivePowerUps(ecs, screen, m, py+14)
	drawPopups(ecs, screen)
	drawBanner(ecs, screen)

	if session.State == cfg.StatePaused {
		drawPause(screen)
	}
}

func drawActivePowerUps(ecs *ecs.ECS, screen *ebiten.Image, x, y float32) {
	effects := getEffects(ecs.World)
	session := getSession(ecs.World)
	if effects == nil {
		return
	}
	small := fonts.Small.Get()
	for i, a := range effects.Active {
		clr := cfg.UI.RapidFireColor
		if a.Type == cfg.PowerUpShield {
			clr = cfg.UI.ShieldColor
		}
		row := y + float32(i)*18
		left := float32(1 - a.Progress(session.Tick))
		vector.FillRect(screen, x, row, 100, 6, cfg.UI.HealthBarBgColor, false)
		vector.FillRect(screen, x, row, 100*left, 6, clr, false)
		label := fmt.Sprintf("%s %.1fs", a.Type, a.Remaining(session.Tick))
		text.Draw(screen, label, small, int(x)+106, int(row)+7, clr)
	}
}

func drawPopups(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(ecs.World)
	if hud == nil {
		return
	}
	face := fonts.Regular.Get()
	for _, p := range hud.Popups {
		text.Draw(screen, p.Text, face, int(p.X)-textWidth(p.Text, face)/2, int(p.Y), p.Color)
	}
}

func drawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(ecs.World)
	if hud == nil || hud.Banner == "" {
		return
	}
	face := fonts.Bold.Get()
	w := screen.Bounds().Dx()
	text.Draw(screen, hud.Banner, face, (w-textWidth(hud.Banner, face))/2, 90, cfg.Yellow)
}

func drawPause(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)
	title := "PAUSED"
	face := fonts.Title.Get()
	text.Draw(screen, title, face, (w-textWidth(title, face))/2, h/2, cfg.White)
	hint := "press P or ESC to resume"
	small := fonts.Small.Get()
	text.Draw(screen, hint, small, (w-textWidth(hint, small))/2, h/2+28, cfg.White)
}

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}
