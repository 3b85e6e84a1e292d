package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
)

func TestContactDamageIsMutual(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	e := w.AddEnemy(plainEnemy(component.EnemyFighter, p.Body.X+10, p.Body.Y+10, 40, 3))

	NewCombatSystem().Update(w)

	assert.Equal(t, 2, p.Health.Current)
	assert.Equal(t, 2, w.Enemies.Get(e).Health.Current)
	assert.True(t, w.Enemies.Has(e))
}

func TestContactDamageRepeatsEachTick(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	require.Zero(t, p.InvincibleFrames)
	e := w.AddEnemy(plainEnemy(component.EnemyBoss, p.Body.X, p.Body.Y, 80, 100))

	c := NewCombatSystem()
	for tick := 1; tick <= 2; tick++ {
		c.Update(w)
		assert.Equal(t, 3-tick, p.Health.Current, "tick %d", tick)
		assert.Equal(t, 100-tick, w.Enemies.Get(e).Health.Current, "tick %d", tick)
	}
}

func TestContactDuringIFramesOnlyHurtsEnemy(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	p.InvincibleFrames = 60
	e := w.AddEnemy(plainEnemy(component.EnemyBoss, p.Body.X, p.Body.Y, 80, 100))

	c := NewCombatSystem()
	c.Update(w)
	c.Update(w)

	assert.Equal(t, 2, p.Health.Current)
	assert.Equal(t, 98, w.Enemies.Get(e).Health.Current)
}

func TestPlayerBulletHitsFirstEnemyOnly(t *testing.T) {
	w := newTestWorld(1)
	first := w.AddEnemy(plainEnemy(component.EnemyBasic, 100, 100, 40, 3))
	second := w.AddEnemy(plainEnemy(component.EnemyBasic, 105, 105, 40, 3))
	b := w.AddBullet(component.Bullet{Kind: component.BulletHeavy, Pos: cp.Vector{X: 120, Y: 120}, Width: 24, Height: 24, Damage: 5})

	NewCombatSystem().Update(w)

	assert.Equal(t, 0, w.Enemies.Get(first).Health.Current)
	assert.Equal(t, 3, w.Enemies.Get(second).Health.Current)
	assert.True(t, w.PlayerBullets.Get(b).Consumed)
}

func TestUnsetDamageCountsAsOne(t *testing.T) {
	w := newTestWorld(1)
	e := w.AddEnemy(plainEnemy(component.EnemyFighter, 100, 100, 40, 2))
	w.AddBullet(component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 120, Y: 120}, Width: 5, Height: 10})

	NewCombatSystem().Update(w)
	assert.Equal(t, 1, w.Enemies.Get(e).Health.Current)
}

func TestMissedBulletIsNotConsumed(t *testing.T) {
	w := newTestWorld(1)
	w.AddEnemy(plainEnemy(component.EnemyBasic, 100, 100, 40, 1))
	b := w.AddBullet(component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 142.5, Y: 120}, Width: 5, Height: 10, Damage: 1})

	NewCombatSystem().Update(w)
	assert.False(t, w.PlayerBullets.Get(b).Consumed)
}

func TestBulletBoxIsAnchoredTopLeft(t *testing.T) {
	w := newTestWorld(1)
	left := w.AddEnemy(plainEnemy(component.EnemyBasic, 358.5, 500, 40, 3))
	b := w.AddBullet(component.Bullet{Kind: component.BulletHeavy, Pos: cp.Vector{X: 400, Y: 520}, Width: 24, Height: 24, Damage: 5})

	NewCombatSystem().Update(w)
	assert.False(t, w.PlayerBullets.Get(b).Consumed)
	assert.Equal(t, 3, w.Enemies.Get(left).Health.Current)

	right := w.AddEnemy(plainEnemy(component.EnemyBasic, 420, 500, 40, 3))
	NewCombatSystem().Update(w)
	assert.True(t, w.PlayerBullets.Get(b).Consumed)
	assert.Equal(t, 0, w.Enemies.Get(right).Health.Current)
}

func TestEnemyBulletConsumedWhileInvincible(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	p.Health.StartIFrames(30)
	center := cp.Vector{X: p.Body.CenterX(), Y: p.Body.CenterY()}
	b := w.AddBullet(component.Bullet{Kind: component.BulletEnemy, Pos: center, Width: 5, Height: 10, Damage: 1})

	NewCombatSystem().Update(w)

	assert.Equal(t, 3, p.Health.Current)
	assert.True(t, w.EnemyBullets.Get(b).Consumed)
	assert.Empty(t, eventKinds(w))
}

func TestEnemyBulletDamageScales(t *testing.T) {
	w := newTestWorld(1)
	p := w.Player
	center := cp.Vector{X: p.Body.CenterX(), Y: p.Body.CenterY()}
	w.AddBullet(component.Bullet{Kind: component.BulletEnemy, Pos: center, Width: 5, Height: 10, Damage: 2})

	NewCombatSystem().Update(w)

	assert.Equal(t, 1, p.Health.Current)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPlayerHit, events[0].Kind)
	assert.Equal(t, 1, events[0].Value)
}
