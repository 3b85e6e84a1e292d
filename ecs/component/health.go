package component

// Health is shared by the player and every enemy. Current never goes below
// zero; an owner at zero is dead.
type Health struct {
	Max     int
	Current int
	// IFrames counts remaining invincibility ticks.
	IFrames int
}

func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

func (h *Health) Invincible() bool {
	return h != nil && h.IFrames > 0
}

// ApplyDamage subtracts amount unless invincible. Reports whether HP changed.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.IFrames > 0 || amount <= 0 || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return true
}

func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	h.IFrames = frames
}

// Tick advances the invincibility timer by one tick.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

// Ratio is Current/Max clamped to [0, 1], for health bars.
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r > 1 {
		return 1
	}
	return r
}
