package system

import (
	"math/rand"

	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
)

// WeightedKind is one entry of a weighted spawn table.
type WeightedKind struct {
	Kind   component.EnemyKind
	Weight int
}

// ChooseWeighted picks an entry with probability proportional to its
// weight. Entries with non-positive weight are never picked.
func ChooseWeighted(rng *rand.Rand, entries []WeightedKind) component.EnemyKind {
	if len(entries) == 0 {
		panic("system: empty spawn table")
	}

	total := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	if total <= 0 {
		return entries[0].Kind
	}

	r := rng.Intn(total)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Kind
}

func spawnTable(w *ecs.World) []WeightedKind {
	weights := w.Tuning.Spawn.Weights
	return []WeightedKind{
		{Kind: component.EnemyHazard, Weight: weights.Hazard},
		{Kind: component.EnemyFighter, Weight: weights.Fighter},
		{Kind: component.EnemyBasic, Weight: weights.Basic},
	}
}

func openingTable(w *ecs.World) []WeightedKind {
	weights := w.Tuning.Spawn.Weights
	return []WeightedKind{
		{Kind: component.EnemyHazard, Weight: weights.Hazard},
		{Kind: component.EnemyFighter, Weight: weights.Fighter},
	}
}

// SpawnSystem is the spawn director: every interval ticks it decides what
// enemy, if any, enters the playfield.
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.Spawner.Advance() {
		return
	}
	enemy, ok := DecideSpawn(w)
	if !ok {
		return
	}
	e := w.AddEnemy(enemy)
	if enemy.Kind == component.EnemyBoss {
		w.Emit(ecs.Event{Kind: ecs.EventBossSpawned, Entity: e, X: enemy.Body.CenterX(), Y: enemy.Body.CenterY(), Value: w.Run.Level})
	}
}

// DecideSpawn makes one spawn decision. The boss check runs before any
// random roll and fires once per level; after that the timer spawns nothing
// until the level changes.
func DecideSpawn(w *ecs.World) (component.Enemy, bool) {
	t := w.Tuning
	run := &w.Run

	if run.KillsThisLevel >= t.Spawn.BossKills && !run.BossSpawned {
		run.BossSpawned = true
		x := w.Rand.Float64() * (t.Playfield.Width - t.Enemies.Boss.Width)
		return entity.NewBoss(t, run.Level, x, t.Enemies.Boss.SpawnY), true
	}
	if run.BossSpawned {
		return component.Enemy{}, false
	}

	kind := ChooseWeighted(w.Rand, spawnTable(w))
	return entity.New(kind, t, w.Rand, run.Level, spawnX(w), t.Spawn.SpawnY), true
}

// SpawnOpening drops the opening enemies so the first screen is not empty.
// Only hazards and fighters are used and the timer is not consulted.
func SpawnOpening(w *ecs.World) {
	t := w.Tuning
	table := openingTable(w)
	for i := 0; i < t.Spawn.Opening; i++ {
		kind := ChooseWeighted(w.Rand, table)
		w.AddEnemy(entity.New(kind, t, w.Rand, w.Run.Level, spawnX(w), t.Spawn.SpawnY))
	}
}

func spawnX(w *ecs.World) float64 {
	s := w.Tuning.Spawn
	return s.MinX + w.Rand.Float64()*(s.MaxX-s.MinX)
}
