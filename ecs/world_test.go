package ecs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skyraid/ecs/component"
)

func newTestWorld() *World {
	return NewWorld(nil, rand.New(rand.NewSource(1)))
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			require.Equal(t, c.create, w.LiveEntities())

			if c.destroyIndex >= 0 {
				require.NoError(t, w.DestroyEntity(ents[c.destroyIndex]))
				assert.False(t, w.IsAlive(ents[c.destroyIndex]))
				assert.Equal(t, c.create-1, w.LiveEntities())
				assert.ErrorIs(t, w.DestroyEntity(ents[c.destroyIndex]), ErrEntityNotAlive)
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := newTestWorld()
	old := w.CreateEntity()
	require.NoError(t, w.DestroyEntity(old))

	reused := w.CreateEntity()
	assert.Equal(t, old.id(), reused.id())
	assert.NotEqual(t, old, reused)
	assert.False(t, w.IsAlive(old))
	assert.True(t, w.IsAlive(reused))
}

func TestAddBulletRoutesBySide(t *testing.T) {
	w := newTestWorld()
	pe := w.AddBullet(component.Bullet{Kind: component.BulletSpread})
	ee := w.AddBullet(component.Bullet{Kind: component.BulletBossScatter})

	assert.True(t, w.PlayerBullets.Has(pe))
	assert.False(t, w.EnemyBullets.Has(pe))
	assert.True(t, w.EnemyBullets.Has(ee))
	assert.False(t, w.PlayerBullets.Has(ee))

	require.NoError(t, w.DestroyEntity(ee))
	assert.Equal(t, 0, w.EnemyBullets.Len())
}

func TestAddEnemyStoresCopy(t *testing.T) {
	w := newTestWorld()
	enemy := component.Enemy{Kind: component.EnemyBasic, Health: component.NewHealth(1)}
	e := w.AddEnemy(enemy)
	enemy.Health.Current = 0

	stored := w.Enemies.Get(e)
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.Health.Current)
}

func TestBossLookup(t *testing.T) {
	w := newTestWorld()
	_, _, ok := w.Boss()
	assert.False(t, ok)

	w.AddEnemy(component.Enemy{Kind: component.EnemyHazard})
	want := w.AddEnemy(component.Enemy{Kind: component.EnemyBoss})
	e, boss, ok := w.Boss()
	require.True(t, ok)
	assert.Equal(t, want, e)
	assert.Equal(t, component.EnemyBoss, boss.Kind)
}

func TestEventQueueDrain(t *testing.T) {
	w := newTestWorld()
	w.Emit(Event{Kind: EventEnemyKilled})
	w.Emit(Event{Kind: EventLevelUp, Value: 2})
	require.Equal(t, 2, w.Events().Len())

	events := w.Events().Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventLevelUp, events[1].Kind)
	assert.Equal(t, 0, w.Events().Len())
	assert.Nil(t, w.Events().Drain())
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []int
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, 1) }),
		nil,
		SystemFunc(func(*World) { order = append(order, 2) }),
	)
	s.Update(newTestWorld())
	assert.Equal(t, []int{1, 2}, order)
	assert.Len(t, s.Systems(), 2)
}
