package systems

import (
	"errors"
	"testing"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/automoto/pixelstrike/systems/mocks"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/mock/gomock"
)

func TestNewSimulationDefaults(t *testing.T) {
	sim := newTestSim(t)
	session := sim.Session()
	if session.State != cfg.StatePlaying {
		t.Errorf("state = %v, want playing", session.State)
	}
	if session.Mode != cfg.ModeNormal {
		t.Errorf("mode = %v, want Normal", session.Mode)
	}
	if got := center(mustPlayer(t, sim)); got != (dmath.Vec2{X: 400, Y: 300}) {
		t.Errorf("player at %+v, want arena centre", got)
	}
	if hp := components.Health.Get(mustPlayer(t, sim)); hp.Current != cfg.Player.Health {
		t.Errorf("health = %d, want %d", hp.Current, cfg.Player.Health)
	}
	if sim.Difficulty().Level != 1 {
		t.Errorf("level = %d, want 1", sim.Difficulty().Level)
	}
}

func TestRenderersRegister(t *testing.T) {
	sim := newTestSim(t,
		WithRenderer(NewDrawArena(nil)),
		WithRenderer(DrawSprites),
		WithRenderer(DrawBursts),
		WithRenderer(DrawHUD),
	)
	step(sim, 2)
	sim.Reset()
	if sim.Session().Tick != 0 {
		t.Errorf("tick = %d after reset", sim.Session().Tick)
	}
}

func TestPlayerSpawnOption(t *testing.T) {
	sim := newTestSim(t, WithPlayerSpawn(dmath.Vec2{X: 120, Y: 90}))
	if got := center(mustPlayer(t, sim)); got != (dmath.Vec2{X: 120, Y: 90}) {
		t.Errorf("player at %+v, want (120, 90)", got)
	}
}

func TestPauseStopsClock(t *testing.T) {
	sim := newTestSim(t)
	step(sim, 10)
	if sim.Session().Tick != 10 {
		t.Fatalf("tick = %d, want 10", sim.Session().Tick)
	}

	sim.Pause()
	step(sim, 30)
	if sim.Session().Tick != 10 {
		t.Errorf("tick advanced while paused: %d", sim.Session().Tick)
	}

	sim.Resume()
	step(sim, 5)
	if sim.Session().Tick != 15 {
		t.Errorf("tick = %d after resume, want 15", sim.Session().Tick)
	}

	sim.TogglePause()
	if sim.Session().State != cfg.StatePaused {
		t.Errorf("state = %v after toggle, want paused", sim.Session().State)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	sim := newTestSim(t)
	triggerGameOver(sim.ECS().World)
	sim.TogglePause()
	if sim.Session().State != cfg.StateGameOver {
		t.Errorf("state = %v, want game over", sim.Session().State)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	sim := newTestSim(t)
	player := mustPlayer(t, sim)

	sim.SetJoystick(dmath.Vec2{X: 1, Y: 0})
	step(sim, 100)
	if x := center(player).X; x != 784 {
		t.Errorf("x = %v, want 784", x)
	}

	sim.SetJoystick(dmath.Vec2{X: 0, Y: -5})
	step(sim, 1)
	if y := center(player).Y; y != 296 {
		t.Errorf("y = %v, want 296 with joystick clamped to unit length", y)
	}
}

func TestLevelUpFeedsHUD(t *testing.T) {
	rec := &recorder{}
	sim := newTestSim(t, WithListener(rec))
	sim.Session().Score = 100
	step(sim, 1)

	if len(rec.levels) != 1 || rec.levels[0].Level != 2 {
		t.Fatalf("level events = %+v, want one at level 2", rec.levels)
	}
	hud := getHUD(sim.ECS().World)
	if hud.Banner != "LEVEL 2" || hud.BannerFrames <= 0 {
		t.Errorf("banner = %q (%d frames)", hud.Banner, hud.BannerFrames)
	}

	// Level never drops even if the totals would imply a lower one.
	sim.Session().Score = 0
	step(sim, 1)
	if sim.Difficulty().Level != 2 {
		t.Errorf("level = %d, want 2", sim.Difficulty().Level)
	}
}

func TestHUDFeedPopups(t *testing.T) {
	sim := newTestSim(t)
	feed := NewHUDFeed(sim.ECS().World)
	feed.EnemyDestroyed(messages.KillEvent{Kills: 1, Points: 15, X: 50, Y: 60})
	feed.PowerUpExpired(messages.PowerUpEvent{Type: cfg.PowerUpShield})

	hud := getHUD(sim.ECS().World)
	if len(hud.Popups) != 1 || hud.Popups[0].Text != "+15" {
		t.Fatalf("popups = %+v", hud.Popups)
	}
	if hud.Banner != "shield ended" {
		t.Errorf("banner = %q", hud.Banner)
	}

	step(sim, cfg.Effects.PopupFrames+1)
	if len(hud.Popups) != 0 {
		t.Errorf("%d popups left after expiry", len(hud.Popups))
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	sim := newTestSim(t)
	first := sim.Session().ID
	sim.Session().Score = 250
	sim.Difficulty().Update(250, 0, 0)
	sim.Effects().Activate(cfg.PowerUpShield, sim.Session().Tick)
	triggerGameOver(sim.ECS().World)

	if res, ok := sim.Result(); !ok || !res.NewHighScore || res.HighScore != 250 {
		t.Fatalf("result = %+v, %v", res, ok)
	}

	sim.Reset()
	if sim.Session().ID == first {
		t.Error("reset kept the session id")
	}
	if sim.Session().Score != 0 || sim.Session().State != cfg.StatePlaying {
		t.Errorf("session not fresh: %+v", sim.Session())
	}
	if sim.HighScore() != 250 || sim.Session().HighScore != 250 {
		t.Errorf("high score = %d/%d, want 250", sim.HighScore(), sim.Session().HighScore)
	}
	if _, ok := sim.Result(); ok {
		t.Error("result survived reset")
	}
	if sim.Difficulty().Level != 1 {
		t.Errorf("level = %d after reset, want 1", sim.Difficulty().Level)
	}
	if len(sim.Effects().Active) != 0 || sim.Effects().HasShield {
		t.Errorf("effects survived reset: %+v", sim.Effects())
	}
}

func TestSnapshotRestore(t *testing.T) {
	sim := newTestSim(t)
	session := sim.Session()
	session.Score = 250
	session.Kills = 7
	session.Tick = 599
	step(sim, 1)
	components.Health.Get(mustPlayer(t, sim)).Current = 60

	snap := sim.Snapshot()
	if snap.Level != 3 || snap.GameTime != 10 || snap.PlayerHealth != 60 {
		t.Fatalf("snapshot = %+v", snap)
	}

	other := newTestSim(t)
	other.Restore(snap)
	s := other.Session()
	if s.ID != snap.SessionID || s.Score != 250 || s.Kills != 7 || s.Tick != 600 {
		t.Errorf("restored session = %+v", s)
	}
	if other.Difficulty().Level != 3 {
		t.Errorf("restored level = %d, want 3", other.Difficulty().Level)
	}
	if hp := components.Health.Get(mustPlayer(t, other)).Current; hp != 60 {
		t.Errorf("restored health = %d, want 60", hp)
	}
}

func TestSaveAndLoadGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().LoadItem(cfg.Persistence.HighScoreKey).Return([]byte("900"), nil)

	var saved []byte
	store.EXPECT().SaveItem(cfg.Persistence.GameStateKey, gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			saved = data
			return nil
		})
	store.EXPECT().LoadItem(cfg.Persistence.GameStateKey).DoAndReturn(func(string) ([]byte, error) {
		return saved, nil
	})

	sim := newTestSim(t, WithPersistence(NewPersistence(store)))
	if sim.HighScore() != 900 {
		t.Errorf("high score = %d, want 900 from store", sim.HighScore())
	}
	sim.Session().Score = 40
	if err := sim.SaveGame(); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	sim.Session().Score = 0
	if err := sim.LoadGame(); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if sim.Session().Score != 40 {
		t.Errorf("score = %d after load, want 40", sim.Session().Score)
	}
}

func TestLoadGameWithoutPersistence(t *testing.T) {
	sim := newTestSim(t)
	if err := sim.LoadGame(); !errors.Is(err, ErrNoSavedState) {
		t.Errorf("err = %v, want ErrNoSavedState", err)
	}
}

func TestGameOverSavesHighScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().LoadItem(cfg.Persistence.HighScoreKey).Return(nil, nil)
	gomock.InOrder(
		store.EXPECT().SaveItem(cfg.Persistence.HighScoreKey, []byte("300")).Return(nil),
		store.EXPECT().DeleteItem(cfg.Persistence.GameStateKey).Return(nil),
	)

	sim := newTestSim(t, WithPersistence(NewPersistence(store)))
	sim.Session().Score = 300
	triggerGameOver(sim.ECS().World)
}

func TestAnnounceSavedGame(t *testing.T) {
	tests := []struct {
		name   string
		saved  []byte
		want   bool
		banner string
	}{
		{"saved game", []byte{0x80}, true, cfg.Persistence.ContinueBanner},
		{"nothing saved", nil, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			store.EXPECT().LoadItem(cfg.Persistence.HighScoreKey).Return(nil, nil)
			store.EXPECT().LoadItem(cfg.Persistence.GameStateKey).Return(tt.saved, nil)

			sim := newTestSim(t, WithPersistence(NewPersistence(store)))
			if got := sim.AnnounceSavedGame(); got != tt.want {
				t.Errorf("AnnounceSavedGame = %v, want %v", got, tt.want)
			}
			if hud := getHUD(sim.ECS().World); hud.Banner != tt.banner {
				t.Errorf("banner = %q, want %q", hud.Banner, tt.banner)
			}
		})
	}

	if newTestSim(t).AnnounceSavedGame() {
		t.Error("announced a saved game without persistence")
	}
}

func TestAddListenerReachesCurrentSession(t *testing.T) {
	sim := newTestSim(t)
	rec := &recorder{}
	sim.AddListener(rec)
	sim.Session().Score = 100
	step(sim, 1)
	if len(rec.levels) != 1 {
		t.Errorf("level events = %d, want 1", len(rec.levels))
	}

	sim.Reset()
	sim.Session().Score = 100
	step(sim, 1)
	if len(rec.levels) != 2 {
		t.Errorf("listener not carried into the next session: %d events", len(rec.levels))
	}
}
