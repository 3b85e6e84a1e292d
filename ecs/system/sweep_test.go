package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
)

func TestKillScoresInSameTick(t *testing.T) {
	w := newTestWorld(1)
	e := w.AddEnemy(plainEnemy(component.EnemyHazard, 100, 100, 30, 1))
	b := w.AddBullet(component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 115, Y: 115}, Width: 5, Height: 10, Damage: 1})

	NewCombatSystem().Update(w)
	NewSweepSystem().Update(w)

	assert.False(t, w.Enemies.Has(e))
	assert.False(t, w.IsAlive(b))
	assert.Equal(t, 10, w.Run.Score)
	assert.Equal(t, 1, w.Run.KillsThisLevel)
	require.Equal(t, 1, w.Effects.Len())
	fx := w.Effects.Values()[0]
	assert.Equal(t, 115.0, fx.X)
	assert.Equal(t, 30.0, fx.Size)
	assert.Equal(t, []ecs.EventKind{ecs.EventEnemyHit, ecs.EventEnemyKilled}, eventKinds(w))
}

func TestDoubleHitCountsOneKill(t *testing.T) {
	w := newTestWorld(1)
	w.AddEnemy(plainEnemy(component.EnemyBasic, 100, 100, 40, 1))
	for i := 0; i < 2; i++ {
		w.AddBullet(component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 120, Y: 120}, Width: 5, Height: 10, Damage: 1})
	}

	NewCombatSystem().Update(w)
	NewSweepSystem().Update(w)

	assert.Equal(t, 0, w.Enemies.Len())
	assert.Equal(t, 0, w.PlayerBullets.Len())
	assert.Equal(t, 1, w.Run.KillsThisLevel)
	assert.Equal(t, 10, w.Run.Score)
}

func TestEscapedEnemyScoresNothing(t *testing.T) {
	w := newTestWorld(1)
	e := w.AddEnemy(plainEnemy(component.EnemyHazard, 100, 601, 30, 1))
	kept := w.AddEnemy(plainEnemy(component.EnemyHazard, 100, 600, 30, 1))

	NewSweepSystem().Update(w)

	assert.False(t, w.Enemies.Has(e))
	assert.True(t, w.Enemies.Has(kept))
	assert.Equal(t, 0, w.Run.Score)
	assert.Equal(t, 0, w.Run.KillsThisLevel)
	assert.Equal(t, 0, w.Effects.Len())
}

func TestBossDeathAdvancesLevel(t *testing.T) {
	w := newTestWorld(1)
	w.Run.KillsThisLevel = 130
	w.Run.Score = 1300
	w.Run.BossSpawned = true
	boss := entity.NewBoss(w.Tuning, 1, 200, 40)
	require.Equal(t, 100, boss.Health.Max)
	boss.Health.Current = 0
	e := w.AddEnemy(boss)

	NewSweepSystem().Update(w)

	assert.False(t, w.Enemies.Has(e))
	assert.Equal(t, 1800, w.Run.Score)
	assert.Equal(t, 2, w.Run.Level)
	assert.Equal(t, 0, w.Run.KillsThisLevel)
	assert.False(t, w.Run.BossSpawned)
	assert.False(t, w.Run.BossDefeated)
	assert.False(t, w.Run.Complete)
	require.Equal(t, 1, w.Effects.Len())
	assert.Equal(t, 60.0, w.Effects.Values()[0].Size)
	assert.Equal(t, []ecs.EventKind{ecs.EventBossKilled, ecs.EventLevelUp}, eventKinds(w))
}

func TestBossKillCountsAfterOrdinaryKills(t *testing.T) {
	w := newTestWorld(1)
	w.Run.KillsThisLevel = 100
	w.Run.BossSpawned = true
	boss := entity.NewBoss(w.Tuning, 1, 200, 40)
	boss.Health.Current = 0
	w.AddEnemy(boss)
	fighter := plainEnemy(component.EnemyFighter, 10, 10, 40, 2)
	fighter.Health.Current = 0
	w.AddEnemy(fighter)

	NewSweepSystem().Update(w)

	assert.Equal(t, 2, w.Run.Level)
	assert.Equal(t, 0, w.Run.KillsThisLevel)
	assert.Equal(t, 510, w.Run.Score)
}

func TestFinalBossCompletesRun(t *testing.T) {
	w := newTestWorld(1)
	w.Run.Level = 3
	w.Run.BossSpawned = true
	boss := entity.NewBoss(w.Tuning, 3, 200, 40)
	boss.Health.Current = 0
	w.AddEnemy(boss)

	NewSweepSystem().Update(w)

	assert.Equal(t, 3, w.Run.Level)
	assert.True(t, w.Run.Complete)
	assert.True(t, w.Run.BossDefeated)
	assert.Equal(t, component.PhaseComplete, w.Run.Phase())
	assert.Equal(t, []ecs.EventKind{ecs.EventBossKilled, ecs.EventRunComplete}, eventKinds(w))
}

func TestPlayerDefeatFlaggedOnce(t *testing.T) {
	w := newTestWorld(1)
	w.Player.Health.Current = 0

	s := NewSweepSystem()
	s.Update(w)
	s.Update(w)

	assert.True(t, w.Run.Defeated)
	assert.Equal(t, component.PhasePlayerDefeated, w.Run.Phase())
	assert.Equal(t, []ecs.EventKind{ecs.EventPlayerDefeated}, eventKinds(w))
}

func TestEffectsExpire(t *testing.T) {
	w := newTestWorld(1)
	e := w.AddEffect(entity.NewExplosion(w.Tuning, 10, 10, false))
	s := NewEffectSystem()
	for i := 0; i < 29; i++ {
		s.Update(w)
	}
	require.True(t, w.Effects.Has(e))
	assert.Equal(t, 60.0, w.Effects.Get(e).Radius)
	s.Update(w)
	assert.False(t, w.Effects.Has(e))
}
