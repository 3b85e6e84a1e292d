package component

// Spawner is the spawn director's timer.
type Spawner struct {
	Timer    int
	Interval int
}

// Advance moves the timer one tick and reports whether a spawn decision is
// due, resetting the timer when it is.
func (s *Spawner) Advance() bool {
	s.Timer++
	if s.Timer < s.Interval {
		return false
	}
	s.Timer = 0
	return true
}
