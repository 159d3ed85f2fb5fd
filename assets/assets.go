package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/rs/zerolog/log"
)

var (
	//go:embed all:maps
	assetFS embed.FS
)

// Arena is a loaded arena: gameplay data plus the pre-rendered floor.
type Arena struct {
	Data       *leveldata.ArenaData
	Background *ebiten.Image
}

// Regions converts the map's power-up regions to config rectangles.
func (a *Arena) Regions() []config.Rect {
	rects := make([]config.Rect, 0, len(a.Data.PowerUpRegions))
	for _, r := range a.Data.PowerUpRegions {
		rects = append(rects, config.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	return rects
}

// LoadArena parses the configured arena map and renders its visible tile layers.
func LoadArena() (*Arena, error) {
	path := config.Arena.MapPath
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := &Arena{Data: leveldata.FromMap(m)}

	bg, err := renderBackground(m)
	if err != nil {
		log.Warn().Err(err).Msg("arena background not rendered, using grid")
		return arena, nil
	}
	arena.Background = bg
	return arena, nil
}

func renderBackground(m *tiled.Map) (*ebiten.Image, error) {
	renderer, err := render.NewRendererWithFileSystem(m, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	bg := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)
	for i, layer := range m.Layers {
		// Use "render" custom property to determine visibility
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %s: %w", layer.Name, err)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
	}
	return bg, nil
}
