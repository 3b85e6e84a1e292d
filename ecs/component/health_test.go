package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthApplyDamage(t *testing.T) {
	cases := []struct {
		name    string
		health  Health
		amount  int
		want    int
		changed bool
	}{
		{"normal", NewHealth(3), 1, 2, true},
		{"clamps_at_zero", NewHealth(3), 5, 0, true},
		{"invincible", Health{Max: 3, Current: 3, IFrames: 10}, 1, 3, false},
		{"already_dead", Health{Max: 3, Current: 0}, 1, 0, false},
		{"zero_amount", NewHealth(3), 0, 3, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := c.health
			assert.Equal(t, c.changed, h.ApplyDamage(c.amount))
			assert.Equal(t, c.want, h.Current)
		})
	}
}

func TestHealthRatio(t *testing.T) {
	h := NewHealth(4)
	assert.Equal(t, 1.0, h.Ratio())
	h.ApplyDamage(3)
	assert.Equal(t, 0.25, h.Ratio())
	h.ApplyDamage(4)
	assert.Equal(t, 0, h.Current)
	assert.Equal(t, 0.0, h.Ratio())
}

func newTestPlayer(iframes int) *Player {
	return &Player{
		Health:           NewHealth(3),
		FireDelay:        15,
		InvincibleFrames: iframes,
		BlinkFrames:      5,
		Visible:          true,
	}
}

func TestPlayerInvincibilityAfterHit(t *testing.T) {
	p := newTestPlayer(60)
	require.True(t, p.TakeDamage(1))
	require.True(t, p.Invincible())
	assert.Equal(t, 60, p.InvincibleTimer())

	assert.False(t, p.TakeDamage(1))
	assert.Equal(t, 2, p.Health.Current)

	for i := 0; i < 60; i++ {
		p.TickTimers()
	}
	assert.False(t, p.Invincible())
	assert.True(t, p.Visible)
	assert.True(t, p.TakeDamage(1))
	assert.Equal(t, 1, p.Health.Current)
}

func TestPlayerBlinksWhileInvincible(t *testing.T) {
	p := newTestPlayer(60)
	p.TakeDamage(1)
	flips := 0
	last := p.Visible
	for i := 0; i < 59; i++ {
		p.TickTimers()
		if p.Visible != last {
			flips++
			last = p.Visible
		}
	}
	assert.Greater(t, flips, 5)
}

func TestPlayerWithoutIFramesTakesRepeatedHits(t *testing.T) {
	p := newTestPlayer(0)
	assert.True(t, p.TakeDamage(1))
	assert.True(t, p.TakeDamage(1))
	assert.Equal(t, 1, p.Health.Current)
	assert.False(t, p.Invincible())
}

func TestLethalHitDoesNotStartIFrames(t *testing.T) {
	p := newTestPlayer(60)
	p.TakeDamage(3)
	assert.False(t, p.Health.IsAlive())
	assert.False(t, p.Invincible())
}

func TestFireCooldownTicksDown(t *testing.T) {
	p := newTestPlayer(0)
	p.FireCooldown = 2
	assert.False(t, p.ReadyToFire())
	p.TickTimers()
	p.TickTimers()
	assert.True(t, p.ReadyToFire())
}

func TestMaxHPFor(t *testing.T) {
	assert.Equal(t, 2, MaxHPFor(EnemyBasic, 2, 1))
	assert.Equal(t, 1, MaxHPFor(EnemyHazard, 3, 1))
	assert.Equal(t, 6, MaxHPFor(EnemyFighter, 3, 1))
	assert.Equal(t, 100, MaxHPFor(EnemyBoss, 1, 1))
	assert.Panics(t, func() { MaxHPFor(EnemyBasic, 0, 1) })
	assert.Panics(t, func() { MaxHPFor(EnemyBoss, 4, 1) })
}

func TestParseNames(t *testing.T) {
	a, ok := ParseBossAction("drop_hazard")
	require.True(t, ok)
	assert.Equal(t, BossDropHazard, a)
	_, ok = ParseBossAction("dance")
	assert.False(t, ok)

	m, ok := ParseWeaponMode("heavy_spread")
	require.True(t, ok)
	assert.Equal(t, WeaponHeavySpread, m)
	assert.Len(t, WeaponModes(), 5)
}
