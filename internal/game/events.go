package game

import "fmt"

// EventType enumerates the state changes a Session reports.
type EventType int

const (
	EventStart EventType = iota
	EventFlip
	EventMatch
	EventMismatch
	EventComplete
	EventTimeUp
	EventGameOver
	EventLaunch
	EventBallLost
	EventTick
	EventReset
	EventBack
)

func (e EventType) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventFlip:
		return "Flip"
	case EventMatch:
		return "Match"
	case EventMismatch:
		return "Mismatch"
	case EventComplete:
		return "Complete"
	case EventTimeUp:
		return "TimeUp"
	case EventGameOver:
		return "GameOver"
	case EventLaunch:
		return "Launch"
	case EventBallLost:
		return "BallLost"
	case EventTick:
		return "Tick"
	case EventReset:
		return "Reset"
	case EventBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// GameEvent is a single observable change of a Session.
type GameEvent struct {
	Seq     int
	Type    EventType
	Session string // session ID the event belongs to
	Slots   []int  // slots involved, in flip order
	Points  int    // points earned by a match
	Status  Status // snapshot after the change
	Report  *Report
}

func (e GameEvent) String() string {
	return fmt.Sprintf("#%d %s slots=%v points=%d score=%d", e.Seq, e.Type, e.Slots, e.Points, e.Status.Score)
}

// EventLogger receives the events of a Session.
type EventLogger interface {
	Log(event GameEvent)
}

// EventLoggerFunc adapts a function to EventLogger.
type EventLoggerFunc func(GameEvent)

func (f EventLoggerFunc) Log(event GameEvent) { f(event) }

// MemoryLogger stores events in memory.
type MemoryLogger struct {
	events []GameEvent
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}
