package config

// GameStateID is the coarse state of a play session.
type GameStateID int

const (
	StatePlaying GameStateID = iota
	StatePaused
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// PowerUpType identifies a collectible kind.
type PowerUpType int

const (
	PowerUpHealthBoost PowerUpType = iota
	PowerUpRapidFire
	PowerUpShield
)

// PowerUpTypes lists every type in weighted-selection order.
var PowerUpTypes = []PowerUpType{PowerUpHealthBoost, PowerUpRapidFire, PowerUpShield}

func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealthBoost:
		return "health boost"
	case PowerUpRapidFire:
		return "rapid fire"
	case PowerUpShield:
		return "shield"
	}
	return "unknown"
}

// Timed reports whether the type registers an active buff instead of acting instantly.
func (t PowerUpType) Timed() bool {
	return t == PowerUpRapidFire || t == PowerUpShield
}

// Duration is the buff length in seconds, zero for instant types.
func (t PowerUpType) Duration() float64 {
	switch t {
	case PowerUpRapidFire:
		return PowerUp.RapidFireDuration
	case PowerUpShield:
		return PowerUp.ShieldDuration
	}
	return 0
}

// PlacementMode selects how the spawner picks power-up positions.
type PlacementMode int

const (
	PlacementAroundPlayer PlacementMode = iota
	PlacementRegions
)

// GameMode scales power-up pacing for the whole session.
type GameMode int

const (
	ModeEasy GameMode = iota
	ModeNormal
	ModeHard
	ModeInsane
)

// Multiplier is the spawn-rate multiplier for the mode.
func (m GameMode) Multiplier() float64 {
	switch m {
	case ModeEasy:
		return 0.7
	case ModeHard:
		return 1.5
	case ModeInsane:
		return 2.0
	}
	return 1.0
}

func (m GameMode) String() string {
	switch m {
	case ModeEasy:
		return "Easy"
	case ModeNormal:
		return "Normal"
	case ModeHard:
		return "Hard"
	case ModeInsane:
		return "Insane"
	}
	return "Unknown"
}
