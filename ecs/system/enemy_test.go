package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
)

func TestBasicBouncesAndStepsDown(t *testing.T) {
	w := newTestWorld(1)
	basic := entity.NewBasic(w.Tuning, w.Rand, 1, 759, 100)
	basic.Dir = 1
	e := w.AddEnemy(basic)

	NewEnemySystem(nil).Update(w)

	got := w.Enemies.Get(e)
	assert.Equal(t, 760.0, got.Body.X)
	assert.Equal(t, -1.0, got.Dir)
	assert.Equal(t, 120.0, got.Body.Y)

	NewEnemySystem(nil).Update(w)
	assert.Equal(t, 758.0, got.Body.X)
	assert.Equal(t, 120.0, got.Body.Y)
}

func TestHazardFalls(t *testing.T) {
	w := newTestWorld(1)
	hazard := entity.NewHazard(w.Tuning, w.Rand, 1, 100, 0)
	require.GreaterOrEqual(t, hazard.Speed, 2.0)
	require.LessOrEqual(t, hazard.Speed, 5.0)
	e := w.AddEnemy(hazard)

	NewEnemySystem(nil).Update(w)
	got := w.Enemies.Get(e)
	assert.Equal(t, hazard.Speed, got.Body.Y)
	assert.Equal(t, 100.0, got.Body.X)
}

func TestFighterDriftsAndShoots(t *testing.T) {
	w := newTestWorld(1)
	fighter := entity.NewFighter(w.Tuning, w.Rand, 1, 300, 100)
	require.GreaterOrEqual(t, fighter.Fighter.ShootDelay, 60)
	require.LessOrEqual(t, fighter.Fighter.ShootDelay, 120)
	fighter.Fighter.ShootDelay = 2
	e := w.AddEnemy(fighter)

	s := NewEnemySystem(nil)
	s.Update(w)
	assert.Equal(t, 0, w.EnemyBullets.Len())
	s.Update(w)
	require.Equal(t, 1, w.EnemyBullets.Len())

	got := w.Enemies.Get(e)
	assert.Equal(t, 101.0, got.Body.Y)
	b := w.EnemyBullets.Values()[0]
	assert.Equal(t, got.Body.CenterX(), b.Pos.X)
	assert.Equal(t, got.Body.Bottom(), b.Pos.Y)
	assert.Equal(t, 5.0, b.Vel.Y)
	assert.GreaterOrEqual(t, got.Fighter.ShootDelay, 60)
	assert.LessOrEqual(t, got.Fighter.ShootDelay, 120)
	assert.Equal(t, 0, got.Fighter.ShootCooldown)
}

func TestBossEntersAndStaysInBand(t *testing.T) {
	w := newTestWorld(1)
	e := w.AddEnemy(entity.NewBoss(w.Tuning, 1, 300, -80))
	s := NewEnemySystem(nil)

	for i := 0; i < 120; i++ {
		s.Update(w)
	}
	boss := w.Enemies.Get(e)
	assert.True(t, boss.Boss.Entered)
	assert.Equal(t, 40.0, boss.Body.Y)

	for i := 0; i < 1000; i++ {
		s.Update(w)
		require.GreaterOrEqual(t, boss.Body.Y, 40.0)
		require.LessOrEqual(t, boss.Body.Y, 160.0)
		require.GreaterOrEqual(t, boss.Body.X, 0.0)
		require.LessOrEqual(t, boss.Body.X, 720.0)
	}
}

func TestBossActsThroughOutcomeMerge(t *testing.T) {
	w := newTestWorld(4)
	e := w.AddEnemy(entity.NewBoss(w.Tuning, 1, 300, 40))
	s := NewEnemySystem(nil)

	for i := 0; i < 59; i++ {
		s.Update(w)
	}
	require.Equal(t, 1, w.Enemies.Len())
	require.Equal(t, 0, w.EnemyBullets.Len())

	s.Update(w)
	produced := w.Enemies.Len() - 1 + w.EnemyBullets.Len()
	assert.Contains(t, []int{1, 3, 7, 15}, produced)
	assert.True(t, w.Enemies.Has(e))
}

func TestDeadEnemiesStayPut(t *testing.T) {
	w := newTestWorld(1)
	hazard := entity.NewHazard(w.Tuning, w.Rand, 1, 100, 0)
	hazard.Health.Current = 0
	e := w.AddEnemy(hazard)

	NewEnemySystem(nil).Update(w)
	assert.Equal(t, 0.0, w.Enemies.Get(e).Body.Y)
}

func TestMergeOutcome(t *testing.T) {
	w := newTestWorld(1)
	MergeOutcome(w, component.HazardsOutcome{Hazards: []component.Enemy{{Kind: component.EnemyHazard}, {Kind: component.EnemyHazard}}})
	MergeOutcome(w, component.ReinforcementOutcome{Enemy: component.Enemy{Kind: component.EnemyFighter}})
	MergeOutcome(w, component.BulletsOutcome{Bullets: []component.Bullet{{Kind: component.BulletEnemy}}})
	MergeOutcome(w, component.NoOutcome{})
	MergeOutcome(w, nil)

	assert.Equal(t, 3, w.Enemies.Len())
	assert.Equal(t, 1, w.EnemyBullets.Len())
}
