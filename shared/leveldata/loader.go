package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	playerSpawnGroup    = "PlayerSpawn"
	powerUpRegionsGroup = "PowerUpRegions"
)

// LoadArena parses a TMX file and returns its size, player spawn and power-up
// regions. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(m), nil
}

// FromMap extracts arena data from an already parsed map.
func FromMap(m *tiled.Map) *ArenaData {
	data := &ArenaData{
		MapWidth:  m.Width * m.TileWidth,
		MapHeight: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case playerSpawnGroup:
			if len(og.Objects) > 0 && data.PlayerSpawn == nil {
				o := og.Objects[0]
				data.PlayerSpawn = &SpawnPoint{X: o.X, Y: o.Y}
			}
		case powerUpRegionsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.PowerUpRegions = append(data.PowerUpRegions, Region{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		}
	}

	// Sort top-to-bottom, left-to-right for a stable order
	sort.Slice(data.PowerUpRegions, func(i, j int) bool {
		a, b := data.PowerUpRegions[i], data.PowerUpRegions[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return data
}
