package component

// RunPhase is the state of the level state machine.
type RunPhase int

const (
	PhaseInLevel RunPhase = iota
	PhaseComplete
	PhasePlayerDefeated
)

func (p RunPhase) String() string {
	switch p {
	case PhaseInLevel:
		return "in_level"
	case PhaseComplete:
		return "complete"
	case PhasePlayerDefeated:
		return "player_defeated"
	}
	return "unknown"
}

// RunState is the level and score bookkeeping of one run. Only the scene
// writes it.
type RunState struct {
	Level          int
	Score          int
	KillsThisLevel int
	BossSpawned    bool
	BossDefeated   bool
	Complete       bool
	Defeated       bool
	Paused         bool
}

func NewRunState() RunState {
	return RunState{Level: 1}
}

// BossAlive reports whether this level's boss is on the field.
func (r *RunState) BossAlive() bool {
	return r.BossSpawned && !r.BossDefeated
}

func (r *RunState) Phase() RunPhase {
	switch {
	case r.Defeated:
		return PhasePlayerDefeated
	case r.Complete:
		return PhaseComplete
	}
	return PhaseInLevel
}

// Over reports whether the run has reached a terminal phase.
func (r *RunState) Over() bool {
	return r.Defeated || r.Complete
}
