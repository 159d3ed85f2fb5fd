// Package leveldata parses arena maps. It has no dependencies on ebitengine,
// donburi, or resolv, so it can be loaded and tested headless.
package leveldata

// ArenaData holds the gameplay-relevant contents of a TMX arena.
type ArenaData struct {
	MapWidth       int
	MapHeight      int
	PlayerSpawn    *SpawnPoint // nil when the map defines none
	PowerUpRegions []Region
}

// Region is a rectangle power-ups may appear in.
type Region struct {
	Name       string
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}
