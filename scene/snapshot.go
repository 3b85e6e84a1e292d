package scene

import (
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
)

type PlayerView struct {
	Box          common.Rect
	HP, MaxHP    int
	Visible      bool
	Invincible   bool
	Weapon       component.WeaponMode
	AutoFire     bool
	FireCooldown int
	Skin         int
}

type EnemyView struct {
	Kind    component.EnemyKind
	Box     common.Rect
	HP      int
	HPRatio float64
}

type BulletView struct {
	Kind component.BulletKind
	X, Y float64
	Box  common.Rect
}

type EffectView struct {
	X, Y   float64
	Radius float64
	Fade   float64
}

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the simulation.
type Snapshot struct {
	Frame  int
	Player PlayerView

	Enemies       []EnemyView
	PlayerBullets []BulletView
	EnemyBullets  []BulletView
	Effects       []EffectView

	Score          int
	Level          int
	KillsThisLevel int
	BossFight      bool
	PlayerDefeated bool
	Complete       bool
	Paused         bool
}

// Boss returns the boss view when a boss is on the field.
func (s *Snapshot) Boss() (EnemyView, bool) {
	for _, e := range s.Enemies {
		if e.Kind == component.EnemyBoss {
			return e, true
		}
	}
	return EnemyView{}, false
}

func (s *Scene) Snapshot() Snapshot {
	w := s.world
	p := w.Player
	run := w.Run

	snap := Snapshot{
		Frame: w.Frame,
		Player: PlayerView{
			Box:          p.Body,
			HP:           p.Health.Current,
			MaxHP:        p.Health.Max,
			Visible:      p.Visible,
			Invincible:   p.Invincible(),
			Weapon:       p.Weapon,
			AutoFire:     p.AutoFire,
			FireCooldown: p.FireCooldown,
			Skin:         p.Skin,
		},
		Enemies:        make([]EnemyView, 0, w.Enemies.Len()),
		PlayerBullets:  make([]BulletView, 0, w.PlayerBullets.Len()),
		EnemyBullets:   make([]BulletView, 0, w.EnemyBullets.Len()),
		Effects:        make([]EffectView, 0, w.Effects.Len()),
		Score:          run.Score,
		Level:          run.Level,
		KillsThisLevel: run.KillsThisLevel,
		BossFight:      run.BossAlive(),
		PlayerDefeated: run.Defeated,
		Complete:       run.Complete,
		Paused:         run.Paused,
	}

	for _, e := range w.Enemies.Values() {
		snap.Enemies = append(snap.Enemies, EnemyView{Kind: e.Kind, Box: e.Body, HP: e.Health.Current, HPRatio: e.HPRatio()})
	}
	for _, b := range w.PlayerBullets.Values() {
		snap.PlayerBullets = append(snap.PlayerBullets, bulletView(b))
	}
	for _, b := range w.EnemyBullets.Values() {
		snap.EnemyBullets = append(snap.EnemyBullets, bulletView(b))
	}
	for _, x := range w.Effects.Values() {
		snap.Effects = append(snap.Effects, EffectView{X: x.X, Y: x.Y, Radius: x.Radius, Fade: x.Fade()})
	}
	return snap
}

func bulletView(b *component.Bullet) BulletView {
	return BulletView{Kind: b.Kind, X: b.Pos.X, Y: b.Pos.Y, Box: b.Box()}
}
