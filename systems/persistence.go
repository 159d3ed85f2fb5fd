package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/pixelstrike/config"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/go-msgpack/v2/codec"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// Store is the key/value backend for saved data. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	DeleteItem(itemKey string) error
}

// ErrNoSavedState is returned when no usable saved game exists.
var ErrNoSavedState = errors.New("no saved state")

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool            `json:"fullscreen"`
	ResolutionIndex int             `json:"resolutionIndex"`
	Mode            config.GameMode `json:"mode"`
}

// SavedGameState is a summary of a session in progress.
type SavedGameState struct {
	SessionID        uuid.UUID `codec:"sessionId"`
	Score            int       `codec:"score"`
	PlayerHealth     int       `codec:"playerHealth"`
	Level            int       `codec:"level"`
	GameTime         float64   `codec:"gameTime"`
	EnemiesDestroyed int       `codec:"enemiesDestroyed"`
	SavedAt          int64     `codec:"savedAt"` // unix seconds
}

// Persistence reads and writes high score, settings and saved games.
// A Persistence without a store silently does nothing.
type Persistence struct {
	store Store
	mh    codec.MsgpackHandle
}

// NewPersistence wraps a store. store may be nil.
func NewPersistence(store Store) *Persistence {
	return &Persistence{store: store}
}

// OpenPersistence opens the on-disk gdata store for the game.
func OpenPersistence() (*Persistence, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: config.Persistence.AppName,
	})
	if err != nil {
		return NewPersistence(nil), fmt.Errorf("open gdata: %w", err)
	}
	return NewPersistence(m), nil
}

func (p *Persistence) available() bool {
	return p != nil && p.store != nil
}

// LoadHighScore returns the stored high score, zero when none is saved.
func (p *Persistence) LoadHighScore() (int, error) {
	if !p.available() {
		return 0, nil
	}
	data, err := p.store.LoadItem(config.Persistence.HighScoreKey)
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if len(data) == 0 {
		return 0, nil
	}
	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		return 0, fmt.Errorf("parse high score: %w", err)
	}
	return score, nil
}

// SaveHighScore stores score.
func (p *Persistence) SaveHighScore(score int) error {
	if !p.available() {
		return nil
	}
	data, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("serialize high score: %w", err)
	}
	if err := p.store.SaveItem(config.Persistence.HighScoreKey, data); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// SaveGameState stores s as the current saved game.
func (p *Persistence) SaveGameState(s SavedGameState) error {
	if !p.available() {
		return nil
	}
	var data []byte
	if err := codec.NewEncoderBytes(&data, &p.mh).Encode(s); err != nil {
		return fmt.Errorf("encode game state: %w", err)
	}
	if err := p.store.SaveItem(config.Persistence.GameStateKey, data); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

// LoadGameState returns the saved game. Missing or unreadable data yields ErrNoSavedState.
func (p *Persistence) LoadGameState() (SavedGameState, error) {
	var s SavedGameState
	if !p.available() {
		return s, ErrNoSavedState
	}
	data, err := p.store.LoadItem(config.Persistence.GameStateKey)
	if err != nil {
		return s, fmt.Errorf("load game state: %w", errors.Join(ErrNoSavedState, err))
	}
	if len(data) == 0 {
		return s, ErrNoSavedState
	}
	if err := codec.NewDecoderBytes(data, &p.mh).Decode(&s); err != nil {
		log.Warn().Err(err).Msg("could not decode saved game")
		return SavedGameState{}, ErrNoSavedState
	}
	return s, nil
}

// HasSavedGame reports whether a saved game exists
func (p *Persistence) HasSavedGame() bool {
	if !p.available() {
		return false
	}
	data, err := p.store.LoadItem(config.Persistence.GameStateKey)
	return err == nil && len(data) > 0
}

// ClearGameState removes any saved game
func (p *Persistence) ClearGameState() error {
	if !p.available() {
		return nil
	}
	if err := p.store.DeleteItem(config.Persistence.GameStateKey); err != nil {
		return fmt.Errorf("clear game state: %w", err)
	}
	return nil
}

// LoadSettings returns the saved settings or nil when none exist.
func (p *Persistence) LoadSettings() (*SavedSettings, error) {
	if !p.available() {
		return nil, nil
	}
	data, err := p.store.LoadItem(config.Persistence.SettingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func (p *Persistence) SaveSettings(s *SavedSettings) error {
	if !p.available() || s == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := p.store.SaveItem(config.Persistence.SettingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings applies window settings and returns the game mode to play.
func ApplySavedSettings(saved *SavedSettings) config.GameMode {
	if saved == nil {
		return config.Settings.DefaultMode
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(config.Settings.Resolutions) {
		res := config.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
	return saved.Mode
}
