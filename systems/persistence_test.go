package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/systems/mocks"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestHighScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	p := NewPersistence(store)

	store.EXPECT().SaveItem(cfg.Persistence.HighScoreKey, []byte("123")).Return(nil)
	if err := p.SaveHighScore(123); err != nil {
		t.Fatalf("SaveHighScore: %v", err)
	}

	store.EXPECT().LoadItem(cfg.Persistence.HighScoreKey).Return([]byte("123"), nil)
	got, err := p.LoadHighScore()
	if err != nil || got != 123 {
		t.Errorf("LoadHighScore = %d, %v; want 123", got, err)
	}

	store.EXPECT().LoadItem(cfg.Persistence.HighScoreKey).Return(nil, nil)
	got, err = p.LoadHighScore()
	if err != nil || got != 0 {
		t.Errorf("LoadHighScore on empty store = %d, %v; want 0", got, err)
	}
}

func TestGameStateRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	p := NewPersistence(store)

	want := SavedGameState{
		SessionID:        uuid.New(),
		Score:            420,
		PlayerHealth:     55,
		Level:            4,
		GameTime:         73.5,
		EnemiesDestroyed: 19,
		SavedAt:          1700000000,
	}

	var saved []byte
	store.EXPECT().SaveItem(cfg.Persistence.GameStateKey, gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			saved = data
			return nil
		})
	if err := p.SaveGameState(want); err != nil {
		t.Fatalf("SaveGameState: %v", err)
	}
	if len(saved) == 0 {
		t.Fatal("nothing written")
	}

	store.EXPECT().LoadItem(cfg.Persistence.GameStateKey).Return(saved, nil).Times(2)
	if !p.HasSavedGame() {
		t.Error("HasSavedGame = false after save")
	}
	got, err := p.LoadGameState()
	if err != nil {
		t.Fatalf("LoadGameState: %v", err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadGameStateErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{name: "missing", data: nil},
		{name: "corrupt", data: []byte{0xc1, 0xff, 0x00}},
		{name: "store failure", err: errors.New("disk gone")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			store.EXPECT().LoadItem(cfg.Persistence.GameStateKey).Return(tt.data, tt.err)

			_, err := NewPersistence(store).LoadGameState()
			if !errors.Is(err, ErrNoSavedState) {
				t.Errorf("err = %v, want ErrNoSavedState", err)
			}
		})
	}
}

func TestClearGameState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().DeleteItem(cfg.Persistence.GameStateKey).Return(nil)

	if err := NewPersistence(store).ClearGameState(); err != nil {
		t.Fatalf("ClearGameState: %v", err)
	}

	diskErr := errors.New("disk full")
	store.EXPECT().DeleteItem(cfg.Persistence.GameStateKey).Return(diskErr)
	if err := NewPersistence(store).ClearGameState(); !errors.Is(err, diskErr) {
		t.Errorf("ClearGameState err = %v, want wrapped %v", err, diskErr)
	}
}

func TestSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	p := NewPersistence(store)

	store.EXPECT().LoadItem(cfg.Persistence.SettingsKey).Return(nil, nil)
	s, err := p.LoadSettings()
	if err != nil || s != nil {
		t.Fatalf("LoadSettings on empty store = %+v, %v; want nil", s, err)
	}

	var saved []byte
	store.EXPECT().SaveItem(cfg.Persistence.SettingsKey, gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			saved = data
			return nil
		})
	in := &SavedSettings{Fullscreen: true, ResolutionIndex: 2, Mode: cfg.ModeHard}
	if err := p.SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	store.EXPECT().LoadItem(cfg.Persistence.SettingsKey).Return(saved, nil)
	out, err := p.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if *out != *in {
		t.Errorf("settings = %+v, want %+v", out, in)
	}
}

func TestPersistenceWithoutStore(t *testing.T) {
	p := NewPersistence(nil)
	if err := p.SaveHighScore(10); err != nil {
		t.Errorf("SaveHighScore: %v", err)
	}
	if hs, err := p.LoadHighScore(); hs != 0 || err != nil {
		t.Errorf("LoadHighScore = %d, %v", hs, err)
	}
	if p.HasSavedGame() {
		t.Error("HasSavedGame = true without a store")
	}
	if _, err := p.LoadGameState(); !errors.Is(err, ErrNoSavedState) {
		t.Errorf("LoadGameState err = %v", err)
	}

	var nilP *Persistence
	if err := nilP.ClearGameState(); err != nil {
		t.Errorf("nil ClearGameState: %v", err)
	}
}

func TestApplySavedSettingsDefaultMode(t *testing.T) {
	if m := ApplySavedSettings(nil); m != cfg.Settings.DefaultMode {
		t.Errorf("mode = %v, want %v", m, cfg.Settings.DefaultMode)
	}
}
