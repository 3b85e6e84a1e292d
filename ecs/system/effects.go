package system

import (
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
)

// EffectSystem ages explosions and drops the finished ones.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Effects.Each(func(e ecs.Entity, x *component.Explosion) {
		x.Step()
		if x.Finished() {
			_ = w.DestroyEntity(e)
		}
	})
}
