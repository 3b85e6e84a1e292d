package system

import (
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
)

// cullMargin is how far past the side and top edges a bullet may travel
// before it is dropped.
const cullMargin = 50

// BulletSystem advances every projectile and drops the ones that left the
// playfield.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	field := w.Tuning.Playfield

	w.PlayerBullets.Each(func(e ecs.Entity, b *component.Bullet) {
		b.Advance()
		if b.Pos.Y < -cullMargin || b.Pos.X < -cullMargin || b.Pos.X > field.Width+cullMargin {
			_ = w.DestroyEntity(e)
		}
	})

	w.EnemyBullets.Each(func(e ecs.Entity, b *component.Bullet) {
		b.Advance()
		if b.Pos.Y > field.Height || b.Pos.X < -cullMargin || b.Pos.X > field.Width+cullMargin {
			_ = w.DestroyEntity(e)
		}
	})
}
