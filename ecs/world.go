package ecs

import (
	"errors"
	"math/rand"

	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/prefabs"
)

var ErrEntityNotAlive = errors.New("ecs: entity not alive")

// World owns every live collection of a run plus the run bookkeeping.
// Systems receive it for the duration of one tick and have exclusive write
// access while they run.
type World struct {
	entities entityStore
	events   EventQueue

	Player        *component.Player
	Enemies       *SparseSet[component.Enemy]
	PlayerBullets *SparseSet[component.Bullet]
	EnemyBullets  *SparseSet[component.Bullet]
	Effects       *SparseSet[component.Explosion]

	Run     component.RunState
	Spawner component.Spawner
	Input   component.Input

	Tuning *prefabs.Tuning
	Rand   *rand.Rand

	// Frame counts completed ticks.
	Frame int
}

// NewWorld creates an empty world. The player is attached by the caller.
func NewWorld(tuning *prefabs.Tuning, rng *rand.Rand) *World {
	if tuning == nil {
		tuning = prefabs.DefaultTuning()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &World{
		Enemies:       NewSparseSet[component.Enemy](),
		PlayerBullets: NewSparseSet[component.Bullet](),
		EnemyBullets:  NewSparseSet[component.Bullet](),
		Effects:       NewSparseSet[component.Explosion](),
		Run:           component.NewRunState(),
		Spawner:       component.Spawner{Interval: tuning.Spawn.Interval},
		Tuning:        tuning,
		Rand:          rng,
	}
}

// CreateEntity allocates a new handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddEnemy stores a copy of enemy and returns its handle.
func (w *World) AddEnemy(enemy component.Enemy) Entity {
	e := w.CreateEntity()
	w.Enemies.Set(e, &enemy)
	return e
}

// AddBullet stores a copy of b in the collection matching its side.
func (w *World) AddBullet(b component.Bullet) Entity {
	e := w.CreateEntity()
	if b.Side() == component.FactionEnemy {
		w.EnemyBullets.Set(e, &b)
	} else {
		w.PlayerBullets.Set(e, &b)
	}
	return e
}

func (w *World) AddBullets(bullets []component.Bullet) {
	for _, b := range bullets {
		w.AddBullet(b)
	}
}

func (w *World) AddEffect(x component.Explosion) Entity {
	e := w.CreateEntity()
	w.Effects.Set(e, &x)
	return e
}

// DestroyEntity removes e from whichever collection holds it and frees the
// handle.
func (w *World) DestroyEntity(e Entity) error {
	if !w.entities.isAlive(e) {
		return ErrEntityNotAlive
	}
	w.Enemies.Remove(e)
	w.PlayerBullets.Remove(e)
	w.EnemyBullets.Remove(e)
	w.Effects.Remove(e)
	w.entities.destroy(e)
	return nil
}

// LiveEntities is the number of allocated handles.
func (w *World) LiveEntities() int {
	return w.entities.live
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit pushes an event onto the queue.
func (w *World) Emit(evt Event) {
	w.events.Push(evt)
}

// Boss returns the live boss, if any.
func (w *World) Boss() (Entity, *component.Enemy, bool) {
	for _, e := range w.Enemies.Entities() {
		if enemy := w.Enemies.Get(e); enemy != nil && enemy.Kind == component.EnemyBoss {
			return e, enemy, true
		}
	}
	return 0, nil, false
}
