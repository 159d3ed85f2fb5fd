package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/pixelstrike/components"
	cfg "github.com/automoto/pixelstrike/config"
	"github.com/automoto/pixelstrike/shared/messages"
	"github.com/automoto/pixelstrike/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithMode sets the game mode scaling power-up pacing.
func WithMode(m cfg.GameMode) Option {
	return func(s *Simulation) { s.mode = m }
}

// WithRand injects the random source. Every reset reuses it.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulation) { s.rand = r }
}

// WithPersistence loads the high score at start and saves it when beaten.
func WithPersistence(p *Persistence) Option {
	return func(s *Simulation) { s.persistence = p }
}

// WithListener registers an observer for session events.
func WithListener(l messages.Listener) Option {
	return func(s *Simulation) { s.listeners = append(s.listeners, l) }
}

// WithRegions sets the rectangles used for region-based power-up placement.
func WithRegions(regions []cfg.Rect) Option {
	return func(s *Simulation) { s.regions = regions }
}

// WithPlayerSpawn overrides the arena centre as the player's start.
func WithPlayerSpawn(p dmath.Vec2) Option {
	return func(s *Simulation) { s.spawn = &p }
}

// WithPreSystem adds a system that runs every tick before the simulation, even while paused.
func WithPreSystem(sys ecs.System) Option {
	return func(s *Simulation) { s.preSystems = append(s.preSystems, sys) }
}

// WithRenderer adds a renderer drawn on the default layer.
func WithRenderer(r Renderer) Option {
	return func(s *Simulation) { s.renderers = append(s.renderers, r) }
}

// Simulation owns one play session's world and runs its systems in a fixed order.
type Simulation struct {
	ecs *ecs.ECS

	width, height float64
	mode          cfg.GameMode
	rand          *rand.Rand
	persistence   *Persistence
	listeners     []messages.Listener
	regions       []cfg.Rect
	spawn         *dmath.Vec2
	preSystems    []ecs.System
	renderers     []Renderer

	highScore int
	result    *messages.GameOverEvent
}

// NewSimulation returns a simulation for an arena of the given size. Call Start before Update.
func NewSimulation(width, height float64, opts ...Option) *Simulation {
	s := &Simulation{
		width:  width,
		height: height,
		mode:   cfg.ModeNormal,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.persistence != nil {
		hs, err := s.persistence.LoadHighScore()
		if err != nil {
			log.Warn().Err(err).Msg("could not load high score")
		}
		s.highScore = hs
	}
	return s
}

// Start builds a fresh session.
func (s *Simulation) Start() {
	s.build()
	log.Info().Stringer("session", s.Session().ID).Stringer("mode", s.mode).Msg("game started")
}

// Reset discards the current session and starts a new one, keeping the high score.
func (s *Simulation) Reset() {
	if session := s.Session(); session != nil {
		s.highScore = max(s.highScore, session.HighScore)
	}
	s.build()
	log.Info().Stringer("session", s.Session().ID).Msg("game reset")
}

func (s *Simulation) build() {
	e := ecs.NewECS(donburi.NewWorld())

	for _, sys := range s.preSystems {
		e.AddSystem(sys)
	}

	e.AddSystem(WithPlayingCheck(UpdateClock))
	e.AddSystem(WithPlayingCheck(UpdatePlayer))
	e.AddSystem(WithPlayingCheck(UpdateEnemySpawner))
	e.AddSystem(WithPlayingCheck(UpdateEnemyShots))
	e.AddSystem(WithPlayingCheck(UpdateEnemies))
	e.AddSystem(WithPlayingCheck(UpdateProjectiles))
	e.AddSystem(WithPlayingCheck(UpdatePowerUpSpawner))
	e.AddSystem(WithPlayingCheck(UpdatePowerUps))
	e.AddSystem(WithPlayingCheck(DetectContacts))
	e.AddSystem(WithPlayingCheck(ResolveContacts))
	e.AddSystem(WithPlayingCheck(UpdatePowerUpEffects))
	e.AddSystem(WithPlayingCheck(UpdateDifficulty))
	e.AddSystem(WithPlayingCheck(UpdateEffects))

	for _, r := range s.renderers {
		e.AddRenderer(cfg.Default, r)
	}

	ContactQueue.Subscribe(e.World, func(_ donburi.World, ev ContactEvent) {
		HandleContact(e, ev)
	})

	factory.CreateSpace(e, int(s.width), int(s.height), cfg.Arena.CellSize, cfg.Arena.CellSize)

	s.result = nil
	listeners := []messages.Listener{NewHUDFeed(e.World), &resultRecorder{sim: s}}
	if s.persistence != nil {
		listeners = append(listeners, &saveOnGameOver{persistence: s.persistence})
	}
	listeners = append(listeners, s.listeners...)

	factory.CreateSession(e, factory.SessionOptions{
		Width:     s.width,
		Height:    s.height,
		Mode:      s.mode,
		HighScore: s.highScore,
		Rand:      s.rand,
		Listeners: listeners,
		Regions:   s.regions,
	})

	spawn := dmath.Vec2{X: s.width / 2, Y: s.height / 2}
	if s.spawn != nil {
		spawn = *s.spawn
	}
	factory.CreatePlayer(e, spawn.X, spawn.Y)

	s.ecs = e
}

// ECS exposes the underlying world for scenes and tests.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Update advances one tick.
func (s *Simulation) Update() {
	if s.ecs == nil {
		return
	}
	s.ecs.Update()
}

// Draw runs the registered renderers.
func (s *Simulation) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *Simulation) Session() *components.SessionData {
	if s.ecs == nil {
		return nil
	}
	return getSession(s.ecs.World)
}

func (s *Simulation) Difficulty() *components.DifficultyData {
	if s.ecs == nil {
		return nil
	}
	return getDifficulty(s.ecs.World)
}

func (s *Simulation) Effects() *components.PowerUpEffectsData {
	if s.ecs == nil {
		return nil
	}
	return getEffects(s.ecs.World)
}

// Player returns the player entry, if it is still in the world.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	if s.ecs == nil {
		return nil, false
	}
	return getPlayer(s.ecs.World)
}

// HighScore is the best score seen by this simulation, including the current session.
func (s *Simulation) HighScore() int {
	if session := s.Session(); session != nil {
		return max(s.highScore, session.HighScore)
	}
	return s.highScore
}

func (s *Simulation) Pause() {
	if session := s.Session(); session != nil && session.State == cfg.StatePlaying {
		TogglePause(s.ecs.World)
	}
}

func (s *Simulation) Resume() {
	if session := s.Session(); session != nil && session.State == cfg.StatePaused {
		TogglePause(s.ecs.World)
	}
}

func (s *Simulation) TogglePause() {
	if s.ecs != nil {
		TogglePause(s.ecs.World)
	}
}

// SetJoystick sets the movement direction applied on following ticks. Magnitude is clamped to 1.
func (s *Simulation) SetJoystick(dir dmath.Vec2) {
	if s.ecs == nil {
		return
	}
	if input := getInput(s.ecs.World); input != nil {
		input.Joystick = dir
	}
}

// FireAt requests a player shot toward p on the next tick.
func (s *Simulation) FireAt(p dmath.Vec2) {
	if s.ecs == nil {
		return
	}
	if input := getInput(s.ecs.World); input != nil {
		input.Fire = true
		input.FireTarget = p
	}
}

// AddListener registers l for the current and every later session.
func (s *Simulation) AddListener(l messages.Listener) {
	s.listeners = append(s.listeners, l)
	if session := s.Session(); session != nil {
		session.Listeners = append(session.Listeners, l)
	}
}

// Snapshot summarizes the session for saving.
func (s *Simulation) Snapshot() SavedGameState {
	session := s.Session()
	difficulty := s.Difficulty()
	if session == nil || difficulty == nil {
		return SavedGameState{}
	}
	snap := SavedGameState{
		SessionID:        session.ID,
		Score:            session.Score,
		Level:            difficulty.Level,
		GameTime:         session.Seconds(),
		EnemiesDestroyed: session.Kills,
		SavedAt:          time.Now().Unix(),
	}
	if p, ok := s.Player(); ok {
		snap.PlayerHealth = components.Health.Get(p).Current
	}
	return snap
}

// Restore starts a new session carrying the saved score, health, level, clock and kills.
func (s *Simulation) Restore(snap SavedGameState) {
	s.Reset()

	session := s.Session()
	session.ID = snap.SessionID
	session.Score = snap.Score
	session.Kills = snap.EnemiesDestroyed
	session.Tick = cfg.Seconds(snap.GameTime)

	difficulty := s.Difficulty()
	difficulty.Level = max(1, snap.Level)
	difficulty.Update(snap.Score, snap.GameTime, snap.EnemiesDestroyed)
	difficulty.LastAdjustment = snap.GameTime

	spawner := getSpawner(s.ecs.World)
	now := session.Seconds()
	spawner.LastEnemySpawn = now
	spawner.LastShot = now
	spawner.NextPowerUp = now + cfg.PowerUp.InitialDelay

	if p, ok := s.Player(); ok && snap.PlayerHealth > 0 {
		hp := components.Health.Get(p)
		hp.Current = min(snap.PlayerHealth, hp.Max)
	}
	log.Info().Stringer("session", session.ID).Int("score", snap.Score).Msg("game restored")
}

// SaveGame writes a snapshot through the configured persistence.
func (s *Simulation) SaveGame() error {
	if s.persistence == nil {
		return nil
	}
	return s.persistence.SaveGameState(s.Snapshot())
}

// LoadGame restores the saved snapshot. It returns ErrNoSavedState when none is usable.
func (s *Simulation) LoadGame() error {
	if s.persistence == nil {
		return ErrNoSavedState
	}
	snap, err := s.persistence.LoadGameState()
	if err != nil {
		return err
	}
	s.Restore(snap)
	return nil
}

// AnnounceSavedGame shows a banner inviting the player to continue when a saved game exists.
// It reports whether one was found.
func (s *Simulation) AnnounceSavedGame() bool {
	if s.persistence == nil || !s.persistence.HasSavedGame() {
		return false
	}
	if hud := getHUD(s.ecs.World); hud != nil {
		hud.Banner = cfg.Persistence.ContinueBanner
		hud.BannerFrames = cfg.Effects.BannerFrames
	}
	return true
}

// Result returns the game over event of the current session once it has ended.
func (s *Simulation) Result() (messages.GameOverEvent, bool) {
	if s.result == nil {
		return messages.GameOverEvent{}, false
	}
	return *s.result, true
}

type resultRecorder struct {
	messages.NopListener
	sim *Simulation
}

func (r *resultRecorder) GameOver(e messages.GameOverEvent) {
	r.sim.result = &e
}

// saveOnGameOver records a beaten high score and drops the finished session's save.
type saveOnGameOver struct {
	messages.NopListener
	persistence *Persistence
}

func (l *saveOnGameOver) GameOver(e messages.GameOverEvent) {
	if e.NewHighScore {
		if err := l.persistence.SaveHighScore(e.HighScore); err != nil {
			log.Warn().Err(err).Msg("could not save high score")
		}
	}
	if err := l.persistence.ClearGameState(); err != nil {
		log.Warn().Err(err).Msg("could not clear saved game")
	}
}
