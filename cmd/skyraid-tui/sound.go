package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/skyraid/ecs"
)

const sampleRate = beep.SampleRate(44100)

type blip struct {
	freq     float64
	duration time.Duration
}

// Weapon fire is left silent; with auto-fire on it would never stop.
var blips = map[ecs.EventKind]blip{
	ecs.EventEnemyKilled:    {660, 40 * time.Millisecond},
	ecs.EventPlayerHit:      {220, 120 * time.Millisecond},
	ecs.EventBossSpawned:    {110, 400 * time.Millisecond},
	ecs.EventBossKilled:     {990, 300 * time.Millisecond},
	ecs.EventLevelUp:        {1320, 200 * time.Millisecond},
	ecs.EventRunComplete:    {1760, 500 * time.Millisecond},
	ecs.EventPlayerDefeated: {80, 600 * time.Millisecond},
}

// Sound plays short sine blips for scene events. A nil Sound is silent.
type Sound struct{}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Sound{}, nil
}

func (s *Sound) Play(kind ecs.EventKind) {
	if s == nil {
		return
	}
	b, ok := blips[kind]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, b.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(b.duration), sine))
}
