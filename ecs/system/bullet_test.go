package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skyraid/ecs/component"
)

func TestSingleBulletAdvances(t *testing.T) {
	w := newTestWorld(1)
	require.Equal(t, cp.Vector{X: 400, Y: 550}, w.Player.Muzzle())

	w.AddBullets(Fire(w.Player, &w.Tuning.Weapons))
	NewBulletSystem().Update(w)

	bullets := w.PlayerBullets.Values()
	require.Len(t, bullets, 1)
	assert.Equal(t, 400.0, bullets[0].Pos.X)
	assert.Equal(t, 540.0, bullets[0].Pos.Y)
}

func TestBulletCulling(t *testing.T) {
	cases := []struct {
		name string
		b    component.Bullet
		kept bool
	}{
		{"player_past_top", component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 400, Y: -45}, Vel: cp.Vector{Y: -10}}, false},
		{"player_box_top_past_margin", component.Bullet{Kind: component.BulletHeavy, Pos: cp.Vector{X: 400, Y: -47}, Vel: cp.Vector{Y: -5}, Width: 24, Height: 24}, false},
		{"player_at_top_margin", component.Bullet{Kind: component.BulletSingle, Pos: cp.Vector{X: 400, Y: -40}, Vel: cp.Vector{Y: -10}}, true},
		{"player_past_left", component.Bullet{Kind: component.BulletSpread, Pos: cp.Vector{X: -48, Y: 300}, Vel: cp.Vector{X: -4, Y: -7}}, false},
		{"player_past_right", component.Bullet{Kind: component.BulletSpread, Pos: cp.Vector{X: 848, Y: 300}, Vel: cp.Vector{X: 4, Y: -7}}, false},
		{"enemy_past_bottom", component.Bullet{Kind: component.BulletEnemy, Pos: cp.Vector{X: 400, Y: 598}, Vel: cp.Vector{Y: 5}}, false},
		{"enemy_on_field", component.Bullet{Kind: component.BulletEnemy, Pos: cp.Vector{X: 400, Y: 590}, Vel: cp.Vector{Y: 5}}, true},
		{"scatter_past_side", component.Bullet{Kind: component.BulletBossScatter, Pos: cp.Vector{X: -49, Y: 300}, Vel: cp.Vector{X: -3, Y: 2}}, false},
		{"enemy_above_top_kept", component.Bullet{Kind: component.BulletEnemy, Pos: cp.Vector{X: 400, Y: -70}, Vel: cp.Vector{Y: 5}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(1)
			e := w.AddBullet(c.b)
			NewBulletSystem().Update(w)
			assert.Equal(t, c.kept, w.IsAlive(e))
			assert.Equal(t, c.kept, w.PlayerBullets.Has(e) || w.EnemyBullets.Has(e))
		})
	}
}
