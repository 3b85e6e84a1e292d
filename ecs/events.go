package ecs

// EventKind identifies what happened during a tick.
type EventKind string

const (
	EventWeaponFired    EventKind = "weapon_fired"
	EventPlayerHit      EventKind = "player_hit"
	EventEnemyHit       EventKind = "enemy_hit"
	EventEnemyKilled    EventKind = "enemy_killed"
	EventEnemyEscaped   EventKind = "enemy_escaped"
	EventBossSpawned    EventKind = "boss_spawned"
	EventBossKilled     EventKind = "boss_killed"
	EventLevelUp        EventKind = "level_up"
	EventRunComplete    EventKind = "run_complete"
	EventPlayerDefeated EventKind = "player_defeated"
)

// Event is a notification for frontends (sound, logs). The simulation never
// reads its own events back.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
