package system

import (
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
)

// contactDamage is what the player and an enemy deal each other when their
// bodies overlap.
const contactDamage = 1

// CombatSystem applies damage for every overlap of the tick. Nothing is
// removed here: hit bullets are marked consumed and the sweep finalizes
// removals and deaths.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	enemies := w.Enemies.Entities()

	// Player bullets hit the first overlapping enemy in iteration order.
	w.PlayerBullets.Each(func(_ ecs.Entity, b *component.Bullet) {
		if b.Consumed {
			return
		}
		box := b.Box()
		for _, e := range enemies {
			enemy := w.Enemies.Get(e)
			if enemy == nil || !box.Intersects(enemy.Body) {
				continue
			}
			b.Consumed = true
			if enemy.TakeDamage(b.Hit()) {
				w.Emit(ecs.Event{Kind: ecs.EventEnemyHit, Entity: e, X: b.Pos.X, Y: b.Pos.Y, Value: enemy.Health.Current})
			}
			return
		}
	})

	p := w.Player
	if p == nil {
		return
	}

	// Enemy bullets are consumed on contact even while the player is
	// invincible.
	w.EnemyBullets.Each(func(_ ecs.Entity, b *component.Bullet) {
		if b.Consumed || !b.Box().Intersects(p.Body) {
			return
		}
		b.Consumed = true
		if p.TakeDamage(b.Hit()) {
			w.Emit(ecs.Event{Kind: ecs.EventPlayerHit, X: b.Pos.X, Y: b.Pos.Y, Value: p.Health.Current})
		}
	})

	for _, e := range enemies {
		enemy := w.Enemies.Get(e)
		if enemy == nil || !enemy.Body.Intersects(p.Body) {
			continue
		}
		if p.TakeDamage(contactDamage) {
			w.Emit(ecs.Event{Kind: ecs.EventPlayerHit, Entity: e, X: p.Body.CenterX(), Y: p.Body.CenterY(), Value: p.Health.Current})
		}
		if enemy.TakeDamage(contactDamage) {
			w.Emit(ecs.Event{Kind: ecs.EventEnemyHit, Entity: e, X: enemy.Body.CenterX(), Y: enemy.Body.CenterY(), Value: enemy.Health.Current})
		}
	}
}
