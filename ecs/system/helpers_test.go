package system

import (
	"io"
	"log"
	"math/rand"

	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
	"github.com/milk9111/skyraid/prefabs"
)

var discard = log.New(io.Discard, "", 0)

func newTestWorld(seed int64) *ecs.World {
	w := ecs.NewWorld(prefabs.DefaultTuning(), rand.New(rand.NewSource(seed)))
	w.Player = entity.NewPlayer(w.Tuning, 1)
	return w
}

// plainEnemy is a still enemy with the given box and hit points.
func plainEnemy(kind component.EnemyKind, x, y, size float64, hp int) component.Enemy {
	return component.Enemy{
		Kind:   kind,
		Body:   common.Rect{X: x, Y: y, Width: size, Height: size},
		Health: component.NewHealth(hp),
	}
}

func eventKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, ev := range w.Events().Drain() {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}
