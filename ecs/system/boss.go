package system

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
	"github.com/milk9111/skyraid/prefabs"
)

// rollRange bounds the roll handed to the action script.
const rollRange = 1 << 30

// BossBrain picks and resolves boss actions. The pick is delegated to a
// tengo script when one is loaded; otherwise, or when the script fails,
// the roll indexes the action list directly.
type BossBrain struct {
	scriptPath string
	compiled   *tengo.Compiled
	logger     *log.Logger
}

// NewBossBrain compiles the action script at path. An empty path yields a
// brain that uses the built-in pick.
func NewBossBrain(path string, logger *log.Logger) (*BossBrain, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	b := &BossBrain{scriptPath: path, logger: logger}
	if strings.TrimSpace(path) == "" {
		return b, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("boss script %q: %w", path, err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("roll", 0)
	_ = script.Add("hp_ratio", 1.0)
	_ = script.Add("level", 1)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss script %q: %w", path, err)
	}
	b.compiled = compiled
	return b, nil
}

// Scripted reports whether picks go through the script.
func (b *BossBrain) Scripted() bool {
	return b != nil && b.compiled != nil
}

// Ready counts the boss's action timer and reports whether it acts this
// tick.
func (b *BossBrain) Ready(boss *component.Enemy) bool {
	if boss == nil || boss.Boss == nil {
		return false
	}
	st := boss.Boss
	st.ActionCooldown++
	if st.ActionCooldown < st.ActionDelay {
		return false
	}
	st.ActionCooldown = 0
	return true
}

// Choose picks the next action. Exactly one value is drawn from rng either
// way, so the script and the fallback stay in step for a given seed.
func (b *BossBrain) Choose(rng *rand.Rand, boss *component.Enemy, level int) component.BossAction {
	roll := rng.Intn(rollRange)
	fallback := component.BossActions()[roll%len(component.BossActions())]
	if !b.Scripted() {
		return fallback
	}

	action, err := b.runScript(roll, boss.HPRatio(), level)
	if err != nil {
		b.logger.Printf("boss: script %s: %v", b.scriptPath, err)
		return fallback
	}
	return action
}

func (b *BossBrain) runScript(roll int, hpRatio float64, level int) (component.BossAction, error) {
	c := b.compiled
	if err := c.Set("roll", roll); err != nil {
		return 0, err
	}
	if err := c.Set("hp_ratio", hpRatio); err != nil {
		return 0, err
	}
	if err := c.Set("level", level); err != nil {
		return 0, err
	}
	if err := c.Run(); err != nil {
		return 0, err
	}
	if !c.IsDefined("action") {
		return 0, fmt.Errorf("no action defined")
	}
	name := strings.TrimSpace(c.Get("action").String())
	action, ok := component.ParseBossAction(name)
	if !ok {
		return 0, fmt.Errorf("unknown action %q", name)
	}
	return action, nil
}

// Resolve turns an action into the things it produces. It reads the boss
// and draws from rng but never touches world collections.
func (b *BossBrain) Resolve(action component.BossAction, boss *component.Enemy, t *prefabs.Tuning, rng *rand.Rand, level int) component.BossOutcome {
	body := boss.Body
	base := body.Bottom()

	switch action {
	case component.BossShoot:
		spec := &t.Bullets.Enemy
		out := make([]component.Bullet, 0, 3)
		for i := 1; i <= 3; i++ {
			out = append(out, EnemyBullet(spec, cp.Vector{X: body.X + body.Width*float64(i)/4, Y: base}))
		}
		return component.BulletsOutcome{Bullets: out}

	case component.BossScatter:
		return component.BulletsOutcome{Bullets: scatter(&t.Bullets.Scatter, cp.Vector{X: body.CenterX(), Y: body.CenterY()})}

	case component.BossVolley:
		v := t.Bullets.Volley
		spec := &t.Bullets.Enemy
		out := make([]component.Bullet, 0, v.Columns*v.Rows)
		for row := 0; row < v.Rows; row++ {
			for col := 0; col < v.Columns; col++ {
				x := body.X + body.Width*float64(col+1)/float64(v.Columns+1)
				out = append(out, EnemyBullet(spec, cp.Vector{X: x, Y: base + float64(row)*v.RowGap}))
			}
		}
		return component.BulletsOutcome{Bullets: out}

	case component.BossDropHazard:
		n := t.Enemies.Boss.HazardDrops
		out := make([]component.Enemy, 0, n)
		for i := 0; i < n; i++ {
			x := body.X + rng.Float64()*body.Width
			out = append(out, entity.NewHazard(t, rng, level, x, base))
		}
		return component.HazardsOutcome{Hazards: out}

	case component.BossSummon:
		x := body.CenterX() - t.Enemies.Fighter.Width/2
		return component.ReinforcementOutcome{Enemy: entity.NewFighter(t, rng, level, x, base)}
	}
	return component.NoOutcome{}
}

// scatter radiates bullets across the configured arc; 0 degrees is straight
// down and the angles are symmetric around it.
func scatter(spec *prefabs.ScatterSpec, at cp.Vector) []component.Bullet {
	half := spec.Arc / 2
	out := make([]component.Bullet, 0, int(spec.Arc/spec.Spacing)+1)
	for deg := -half; deg <= half+1e-9; deg += spec.Spacing {
		out = append(out, component.Bullet{
			Kind:   component.BulletBossScatter,
			Pos:    at,
			Vel:    cp.ForAngle(common.DegToRad(90 - deg)).Mult(spec.Speed),
			Width:  spec.Width,
			Height: spec.Height,
			Damage: spec.Damage,
			Angle:  deg,
		})
	}
	return out
}
