package system

import (
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
)

// SweepSystem finalizes the tick: consumed bullets and dead or escaped
// enemies leave the world, and score, kills and level are updated. It is
// the only system that writes the run bookkeeping.
type SweepSystem struct{}

func NewSweepSystem() *SweepSystem { return &SweepSystem{} }

func (s *SweepSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sweepConsumed(w, w.PlayerBullets)
	sweepConsumed(w, w.EnemyBullets)

	var bosses []ecs.Entity
	height := w.Tuning.Playfield.Height
	w.Enemies.Each(func(e ecs.Entity, enemy *component.Enemy) {
		switch {
		case enemy.Dead() && enemy.Kind == component.EnemyBoss:
			bosses = append(bosses, e)
		case enemy.Dead():
			killEnemy(w, e, enemy)
		case enemy.Body.Y > height:
			w.Emit(ecs.Event{Kind: ecs.EventEnemyEscaped, Entity: e, X: enemy.Body.CenterX(), Y: enemy.Body.Y})
			_ = w.DestroyEntity(e)
		}
	})

	for _, e := range bosses {
		if boss := w.Enemies.Get(e); boss != nil {
			killBoss(w, e, boss)
		}
	}

	if w.Player != nil && !w.Player.Health.IsAlive() && !w.Run.Defeated {
		w.Run.Defeated = true
		w.Emit(ecs.Event{Kind: ecs.EventPlayerDefeated, X: w.Player.Body.CenterX(), Y: w.Player.Body.CenterY(), Value: w.Run.Score})
	}
}

func sweepConsumed(w *ecs.World, bullets *ecs.SparseSet[component.Bullet]) {
	bullets.Each(func(e ecs.Entity, b *component.Bullet) {
		if b.Consumed {
			_ = w.DestroyEntity(e)
		}
	})
}

func killEnemy(w *ecs.World, e ecs.Entity, enemy *component.Enemy) {
	cx, cy := enemy.Body.CenterX(), enemy.Body.CenterY()
	w.Run.Score += w.Tuning.Scoring.Kill
	w.Run.KillsThisLevel++
	w.AddEffect(entity.NewExplosion(w.Tuning, cx, cy, false))
	w.Emit(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: e, X: cx, Y: cy, Value: int(enemy.Kind)})
	_ = w.DestroyEntity(e)
}

// killBoss scores the boss and either opens the next level or completes
// the run.
func killBoss(w *ecs.World, e ecs.Entity, boss *component.Enemy) {
	cx, cy := boss.Body.CenterX(), boss.Body.CenterY()
	run := &w.Run
	run.Score += w.Tuning.Scoring.Boss
	run.BossDefeated = true
	w.AddEffect(entity.NewExplosion(w.Tuning, cx, cy, true))
	w.Emit(ecs.Event{Kind: ecs.EventBossKilled, Entity: e, X: cx, Y: cy, Value: run.Level})
	_ = w.DestroyEntity(e)

	if run.Level < common.MaxLevel {
		run.Level++
		run.KillsThisLevel = 0
		run.BossSpawned = false
		run.BossDefeated = false
		w.Emit(ecs.Event{Kind: ecs.EventLevelUp, Value: run.Level})
		return
	}
	run.Complete = true
	w.Emit(ecs.Event{Kind: ecs.EventRunComplete, Value: run.Score})
}
