package systems

import (
	"image/color"
	"math"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Renderer draws one layer of the world onto the screen. donburi's AddRenderer accepts it as is.
type Renderer func(*ecs.ECS, *ebiten.Image)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// NewDrawArena returns a renderer for the arena floor. A nil background falls back to a plain grid.
func NewDrawArena(background *ebiten.Image) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.UI.BackgroundColor)
		if background != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			screen.DrawImage(background, drawOp)
			return
		}

		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		step := cfg.Arena.CellSize
		for x := 0; x < w; x += step {
			vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, cfg.UI.GridColor, false)
		}
		for y := 0; y < h; y += step {
			vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, cfg.UI.GridColor, false)
		}
	}
}

// DrawSprites renders every body as a flat shape centred on its collision box.
// Power-ups are circles scaled by their tween; everything else is a rotated rectangle.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		c := o.Center()

		if e.HasComponent(tags.PowerUp) {
			pu := components.PowerUp.Get(e)
			r := float32(sprite.Width / 2 * pu.Scale)
			vector.FillCircle(screen, float32(c.X), float32(c.Y), r, sprite.Color, true)
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 2, cfg.White, true)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Scale the unit pixel to the sprite, pivot on its centre, rotate, then place.
		drawOp.GeoM.Scale(sprite.Width, sprite.Height)
		drawOp.GeoM.Translate(-sprite.Width/2, -sprite.Height/2)
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(c.X, c.Y)

		drawOp.ColorScale.ScaleWithColor(sprite.Color)
		if e.HasComponent(components.Flash) {
			if flash := components.Flash.Get(e); flash.Duration > 0 {
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}

		screen.DrawImage(whitePixel(), drawOp)
	})

	drawShield(ecs, screen)
}

func drawShield(ecs *ecs.ECS, screen *ebiten.Image) {
	effects := getEffects(ecs.World)
	c, ok := getPlayerCenter(ecs.World)
	if effects == nil || !ok || !effects.IsActive(cfg.PowerUpShield) {
		return
	}
	r := float32(cfg.Player.Size*0.75 + 2*math.Sin(float64(getSession(ecs.World).Tick)/8))
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), r, 2, cfg.UI.ShieldColor, true)
}

// DrawBursts renders kill explosions as expanding, fading rings.
func DrawBursts(ecs *ecs.ECS, screen *ebiten.Image) {
	total := float64(cfg.Effects.BurstDuration)
	components.Burst.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Burst.Get(e)
		t := 1 - float64(b.FramesRemaining)/total
		r := float32(cfg.Effects.BurstRadius * (0.3 + 0.7*t))

		clr := b.Color
		clr.A = uint8(255 * (1 - t))
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), r, 3, clr, true)
		vector.FillCircle(screen, float32(b.X), float32(b.Y), r*0.4, clr, true)
	})
}
