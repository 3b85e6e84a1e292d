package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyraid/common"
)

// Player is the craft controlled by the user. There is exactly one per run.
type Player struct {
	Body   common.Rect
	Speed  float64
	Health Health

	Weapon       WeaponMode
	AutoFire     bool
	FireCooldown int
	FireDelay    int

	// InvincibleFrames is how long the player is untouchable after a hit
	// that leaves it alive. Zero disables hit invincibility.
	InvincibleFrames int
	BlinkFrames      int
	// Visible is flipped while invincible so renderers can blink the craft.
	Visible    bool
	blinkTimer int

	// Skin picks one of the three craft looks; renderers only.
	Skin int
}

func (p *Player) Invincible() bool {
	return p.Health.Invincible()
}

func (p *Player) InvincibleTimer() int {
	return p.Health.IFrames
}

// TakeDamage applies amount unless the player is invincible. A hit that
// leaves the player alive starts the invincibility window.
func (p *Player) TakeDamage(amount int) bool {
	if !p.Health.ApplyDamage(amount) {
		return false
	}
	if p.Health.IsAlive() && p.InvincibleFrames > 0 {
		p.Health.StartIFrames(p.InvincibleFrames)
		p.Visible = false
		p.blinkTimer = 0
	}
	return true
}

// TickTimers counts down the fire cooldown and the invincibility window.
func (p *Player) TickTimers() {
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if !p.Health.Invincible() {
		p.Visible = true
		return
	}
	p.Health.Tick()
	if !p.Health.Invincible() {
		p.Visible = true
		p.blinkTimer = 0
		return
	}
	p.blinkTimer++
	blink := p.BlinkFrames
	if blink <= 0 {
		blink = 1
	}
	if p.blinkTimer >= blink {
		p.blinkTimer = 0
		p.Visible = !p.Visible
	}
}

// Muzzle is the point bursts are emitted from: top centre of the craft.
func (p *Player) Muzzle() cp.Vector {
	return cp.Vector{X: p.Body.X + p.Body.Width/2, Y: p.Body.Y}
}

func (p *Player) ReadyToFire() bool {
	return p.FireCooldown <= 0
}
