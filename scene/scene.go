// Package scene is the level controller: it owns the world, runs the tick
// stages in a fixed order and exposes read-only snapshots to frontends.
package scene

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
	"github.com/milk9111/skyraid/ecs/system"
	"github.com/milk9111/skyraid/prefabs"
)

// State is the run's position in the level state machine.
type State int

const (
	StateInLevel State = iota
	StateComplete
	StatePlayerDefeated
)

func (s State) String() string {
	switch s {
	case StateInLevel:
		return "in_level"
	case StateComplete:
		return "complete"
	case StatePlayerDefeated:
		return "player_defeated"
	}
	return "unknown"
}

type Scene struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	enemies   *system.EnemySystem
	logger    *log.Logger

	scriptPath string
	pending    []ecs.Event
}

// New builds a scene at the start of level 1 with the opening enemies
// already on the field.
func New(opts ...Option) (*Scene, error) {
	cfg := config{skin: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.skin == 0 {
		cfg.skin = 1
	}
	if cfg.skin < 1 || cfg.skin > 3 {
		return nil, fmt.Errorf("scene: skin %d outside 1..3", cfg.skin)
	}
	if cfg.tuning == nil {
		cfg.tuning = prefabs.DefaultTuning()
	} else if err := cfg.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	scriptPath := cfg.tuning.Enemies.Boss.Script
	if cfg.bossScript != nil {
		scriptPath = *cfg.bossScript
	}
	brain, err := system.NewBossBrain(scriptPath, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	w := ecs.NewWorld(cfg.tuning, cfg.rng)
	w.Player = entity.NewPlayer(cfg.tuning, cfg.skin)
	w.Player.AutoFire = cfg.autoFire

	s := &Scene{
		world:      w,
		enemies:    system.NewEnemySystem(brain),
		logger:     cfg.logger,
		scriptPath: scriptPath,
	}
	s.scheduler = ecs.NewScheduler(
		system.NewPlayerControllerSystem(),
		system.NewAutoFireSystem(),
		system.NewSpawnSystem(),
		system.NewBulletSystem(),
		s.enemies,
		system.NewCombatSystem(),
		system.NewSweepSystem(),
		system.NewEffectSystem(),
	)

	system.SpawnOpening(w)
	return s, nil
}

// Tick advances the simulation by one step. It does nothing while paused
// or once the run has ended.
func (s *Scene) Tick() {
	w := s.world
	if w.Run.Paused || w.Run.Over() {
		return
	}
	s.scheduler.Update(w)
	w.Frame++
	s.collect()
}

func (s *Scene) State() State {
	switch s.world.Run.Phase() {
	case component.PhaseComplete:
		return StateComplete
	case component.PhasePlayerDefeated:
		return StatePlayerDefeated
	}
	return StateInLevel
}

// Events returns and clears everything that happened since the last call.
func (s *Scene) Events() []ecs.Event {
	s.collect()
	out := s.pending
	s.pending = nil
	return out
}

// World exposes the simulation state for tests and debugging tools.
func (s *Scene) World() *ecs.World {
	return s.world
}

// ApplyTuning swaps in new tuning between ticks. Live entities keep the
// values they were built with; the player picks up movement and weapon
// timings immediately and the spawn interval changes from the next decision.
func (s *Scene) ApplyTuning(t *prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	w := s.world
	w.Tuning = t
	w.Spawner.Interval = t.Spawn.Interval

	p := w.Player
	p.Speed = t.Player.Speed
	p.FireDelay = t.Player.FireDelay
	p.InvincibleFrames = t.Player.InvincibleFrames
	p.BlinkFrames = t.Player.BlinkFrames
	s.logger.Printf("scene: tuning %q applied", t.Name)
	return nil
}

// ReloadBossScript recompiles the boss action script. On failure the
// previous script stays in use.
func (s *Scene) ReloadBossScript() error {
	brain, err := system.NewBossBrain(s.scriptPath, s.logger)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	s.enemies.Brain = brain
	s.logger.Printf("scene: boss script %q reloaded", s.scriptPath)
	return nil
}

func (s *Scene) collect() {
	events := s.world.Events().Drain()
	for _, ev := range events {
		s.logEvent(ev)
	}
	s.pending = append(s.pending, events...)
}

func (s *Scene) logEvent(ev ecs.Event) {
	run := s.world.Run
	switch ev.Kind {
	case ecs.EventBossSpawned:
		s.logger.Printf("scene: boss spawned on level %d at x=%.0f", ev.Value, ev.X)
	case ecs.EventBossKilled:
		s.logger.Printf("scene: level %d boss defeated, score %d", ev.Value, run.Score)
	case ecs.EventLevelUp:
		s.logger.Printf("scene: advancing to level %d", ev.Value)
	case ecs.EventRunComplete:
		s.logger.Printf("scene: run complete, final score %d", ev.Value)
	case ecs.EventPlayerDefeated:
		s.logger.Printf("scene: player defeated on level %d, score %d", run.Level, ev.Value)
	}
}
