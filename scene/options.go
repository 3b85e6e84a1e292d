package scene

import (
	"log"
	"math/rand"

	"github.com/milk9111/skyraid/prefabs"
)

type config struct {
	rng        *rand.Rand
	tuning     *prefabs.Tuning
	logger     *log.Logger
	skin       int
	autoFire   bool
	bossScript *string
}

// Option configures a Scene.
type Option func(*config)

// WithRand injects the random source used by the spawn director and the
// boss. Tests pass a seeded source to make runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

func WithTuning(t *prefabs.Tuning) Option {
	return func(c *config) { c.tuning = t }
}

func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSkin picks the craft look, 1 to 3.
func WithSkin(skin int) Option {
	return func(c *config) { c.skin = skin }
}

func WithAutoFire(on bool) Option {
	return func(c *config) { c.autoFire = on }
}

// WithBossScript overrides the tengo script named by the tuning. An empty
// path disables scripting and uses the built-in action pick.
func WithBossScript(path string) Option {
	return func(c *config) { c.bossScript = &path }
}
