package prefabs

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// DefaultTuningFile is the tuning spec loaded when no other name is given.
const DefaultTuningFile = "tuning.yaml"

type PlayfieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	MaxHP            int     `yaml:"max_hp"`
	FireDelay        int     `yaml:"fire_delay"`
	InvincibleFrames int     `yaml:"invincible_frames"`
	BlinkFrames      int     `yaml:"blink_frames"`
}

// ProjectileSpec describes one projectile family. Angles are degrees from
// vertical; Stride is the lateral slot distance for side-by-side bursts.
type ProjectileSpec struct {
	Speed  float64   `yaml:"speed"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Damage int       `yaml:"damage"`
	Stride float64   `yaml:"stride"`
	Angles []float64 `yaml:"angles"`
}

type WeaponsSpec struct {
	Single      ProjectileSpec `yaml:"single"`
	Triple      ProjectileSpec `yaml:"triple"`
	Spread      ProjectileSpec `yaml:"spread"`
	Heavy       ProjectileSpec `yaml:"heavy"`
	HeavySpread ProjectileSpec `yaml:"heavy_spread"`
}

type BasicSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	StepDown float64 `yaml:"step_down"`
}

type HazardSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	HP       int     `yaml:"hp"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type FighterSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Drift         float64 `yaml:"drift"`
	MinShootDelay int     `yaml:"min_shoot_delay"`
	MaxShootDelay int     `yaml:"max_shoot_delay"`
}

type BossSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
	BandTop       float64 `yaml:"band_top"`
	BandBottom    float64 `yaml:"band_bottom"`
	ActionDelay   int     `yaml:"action_delay"`
	SpawnY        float64 `yaml:"spawn_y"`
	HazardDrops   int     `yaml:"hazard_drops"`
	Script        string  `yaml:"script"`
}

type EnemiesSpec struct {
	Basic   BasicSpec   `yaml:"basic"`
	Hazard  HazardSpec  `yaml:"hazard"`
	Fighter FighterSpec `yaml:"fighter"`
	Boss    BossSpec    `yaml:"boss"`
}

type ScatterSpec struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Damage  int     `yaml:"damage"`
	Arc     float64 `yaml:"arc"`
	Spacing float64 `yaml:"spacing"`
}

type VolleySpec struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	RowGap  float64 `yaml:"row_gap"`
}

type BulletsSpec struct {
	Enemy   ProjectileSpec `yaml:"enemy"`
	Scatter ScatterSpec    `yaml:"scatter"`
	Volley  VolleySpec     `yaml:"volley"`
}

type SpawnWeights struct {
	Hazard  int `yaml:"hazard"`
	Fighter int `yaml:"fighter"`
	Basic   int `yaml:"basic"`
}

type SpawnSpec struct {
	Interval  int          `yaml:"interval"`
	BossKills int          `yaml:"boss_kills"`
	Opening   int          `yaml:"opening"`
	SpawnY    float64      `yaml:"spawn_y"`
	MinX      float64      `yaml:"min_x"`
	MaxX      float64      `yaml:"max_x"`
	Weights   SpawnWeights `yaml:"weights"`
}

type ScoringSpec struct {
	Kill int `yaml:"kill"`
	Boss int `yaml:"boss"`
}

type EffectsSpec struct {
	ExplosionSize     float64 `yaml:"explosion_size"`
	BossExplosionSize float64 `yaml:"boss_explosion_size"`
	Lifetime          int     `yaml:"lifetime"`
	Growth            float64 `yaml:"growth"`
}

// Tuning holds every number the simulation reads.
type Tuning struct {
	Name      string        `yaml:"name"`
	Playfield PlayfieldSpec `yaml:"playfield"`
	Player    PlayerSpec    `yaml:"player"`
	Weapons   WeaponsSpec   `yaml:"weapons"`
	Enemies   EnemiesSpec   `yaml:"enemies"`
	Bullets   BulletsSpec   `yaml:"bullets"`
	Spawn     SpawnSpec     `yaml:"spawn"`
	Scoring   ScoringSpec   `yaml:"scoring"`
	Effects   EffectsSpec   `yaml:"effects"`
}

// LoadTuning loads and validates a tuning spec. An empty name loads the
// default file.
func LoadTuning(name string) (*Tuning, error) {
	if name == "" {
		name = DefaultTuningFile
	}
	t, err := LoadSpec[Tuning](name)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &t, nil
}

// DefaultTuning loads the embedded tuning and panics if it is broken, which
// can only happen with a bad build.
func DefaultTuning() *Tuning {
	data, err := PrefabsFS.ReadFile(DefaultTuningFile)
	if err != nil {
		panic(fmt.Sprintf("prefabs: embedded %s: %v", DefaultTuningFile, err))
	}
	t, err := DecodeSpec[Tuning](data)
	if err != nil {
		panic(fmt.Sprintf("prefabs: embedded %s: %v", DefaultTuningFile, err))
	}
	if err := t.Validate(); err != nil {
		panic(err.Error())
	}
	return &t
}

// Clone returns a deep copy so callers can tweak values in place.
func (t *Tuning) Clone() *Tuning {
	if t == nil {
		return nil
	}
	out := *t
	out.Weapons.Spread.Angles = append([]float64(nil), t.Weapons.Spread.Angles...)
	out.Weapons.HeavySpread.Angles = append([]float64(nil), t.Weapons.HeavySpread.Angles...)
	return &out
}

func (t *Tuning) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTuning)
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"playfield.width", t.Playfield.Width},
		{"playfield.height", t.Playfield.Height},
		{"player.width", t.Player.Width},
		{"player.height", t.Player.Height},
		{"player.speed", t.Player.Speed},
		{"player.max_hp", float64(t.Player.MaxHP)},
		{"player.fire_delay", float64(t.Player.FireDelay)},
		{"weapons.single.speed", t.Weapons.Single.Speed},
		{"weapons.single.width", t.Weapons.Single.Width},
		{"weapons.single.height", t.Weapons.Single.Height},
		{"weapons.triple.speed", t.Weapons.Triple.Speed},
		{"weapons.triple.width", t.Weapons.Triple.Width},
		{"weapons.triple.height", t.Weapons.Triple.Height},
		{"weapons.spread.speed", t.Weapons.Spread.Speed},
		{"weapons.spread.width", t.Weapons.Spread.Width},
		{"weapons.spread.height", t.Weapons.Spread.Height},
		{"weapons.heavy.speed", t.Weapons.Heavy.Speed},
		{"weapons.heavy.width", t.Weapons.Heavy.Width},
		{"weapons.heavy.height", t.Weapons.Heavy.Height},
		{"weapons.heavy_spread.speed", t.Weapons.HeavySpread.Speed},
		{"weapons.heavy_spread.width", t.Weapons.HeavySpread.Width},
		{"weapons.heavy_spread.height", t.Weapons.HeavySpread.Height},
		{"enemies.basic.width", t.Enemies.Basic.Width},
		{"enemies.basic.height", t.Enemies.Basic.Height},
		{"enemies.hazard.width", t.Enemies.Hazard.Width},
		{"enemies.hazard.height", t.Enemies.Hazard.Height},
		{"enemies.hazard.hp", float64(t.Enemies.Hazard.HP)},
		{"enemies.fighter.width", t.Enemies.Fighter.Width},
		{"enemies.fighter.height", t.Enemies.Fighter.Height},
		{"enemies.boss.width", t.Enemies.Boss.Width},
		{"enemies.boss.height", t.Enemies.Boss.Height},
		{"enemies.boss.action_delay", float64(t.Enemies.Boss.ActionDelay)},
		{"bullets.enemy.speed", t.Bullets.Enemy.Speed},
		{"bullets.enemy.width", t.Bullets.Enemy.Width},
		{"bullets.enemy.height", t.Bullets.Enemy.Height},
		{"bullets.scatter.speed", t.Bullets.Scatter.Speed},
		{"bullets.scatter.width", t.Bullets.Scatter.Width},
		{"bullets.scatter.height", t.Bullets.Scatter.Height},
		{"bullets.scatter.spacing", t.Bullets.Scatter.Spacing},
		{"bullets.volley.columns", float64(t.Bullets.Volley.Columns)},
		{"bullets.volley.rows", float64(t.Bullets.Volley.Rows)},
		{"spawn.interval", float64(t.Spawn.Interval)},
		{"spawn.boss_kills", float64(t.Spawn.BossKills)},
		{"effects.lifetime", float64(t.Effects.Lifetime)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}

	if len(t.Weapons.Spread.Angles) == 0 || len(t.Weapons.HeavySpread.Angles) == 0 {
		return fmt.Errorf("%w: spread weapons need at least one angle", ErrInvalidTuning)
	}
	if t.Enemies.Hazard.MinSpeed > t.Enemies.Hazard.MaxSpeed {
		return fmt.Errorf("%w: enemies.hazard min_speed %v > max_speed %v", ErrInvalidTuning, t.Enemies.Hazard.MinSpeed, t.Enemies.Hazard.MaxSpeed)
	}
	if t.Enemies.Fighter.MinShootDelay <= 0 || t.Enemies.Fighter.MinShootDelay > t.Enemies.Fighter.MaxShootDelay {
		return fmt.Errorf("%w: enemies.fighter shoot delay range [%d, %d]", ErrInvalidTuning, t.Enemies.Fighter.MinShootDelay, t.Enemies.Fighter.MaxShootDelay)
	}
	if t.Enemies.Boss.Width > t.Playfield.Width {
		return fmt.Errorf("%w: enemies.boss width %v > playfield width %v", ErrInvalidTuning, t.Enemies.Boss.Width, t.Playfield.Width)
	}
	if t.Enemies.Boss.BandTop >= t.Enemies.Boss.BandBottom {
		return fmt.Errorf("%w: enemies.boss band_top %v >= band_bottom %v", ErrInvalidTuning, t.Enemies.Boss.BandTop, t.Enemies.Boss.BandBottom)
	}
	if t.Spawn.MinX > t.Spawn.MaxX {
		return fmt.Errorf("%w: spawn min_x %v > max_x %v", ErrInvalidTuning, t.Spawn.MinX, t.Spawn.MaxX)
	}
	w := t.Spawn.Weights
	if w.Hazard < 0 || w.Fighter < 0 || w.Basic < 0 || w.Hazard+w.Fighter+w.Basic == 0 {
		return fmt.Errorf("%w: spawn weights %+v", ErrInvalidTuning, w)
	}
	if w.Hazard+w.Fighter == 0 {
		return fmt.Errorf("%w: opening spawns need a hazard or fighter weight", ErrInvalidTuning)
	}
	return nil
}
