package frontend

import (
	"github.com/janpfeifer/GoMatch/internal/game"
	"k8s.io/klog/v2"
)

// GlobalClientState keeps what must survive navigation between pages:
// the tuning table and the last difficulty/mode picked on the menu.
type GlobalClientState struct {
	Tuning     *game.Tuning
	Difficulty game.Difficulty
	Mode       game.Mode

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Tuning:     game.MustDefaultTuning(),
			Difficulty: game.Normal,
			Mode:       game.Classic,
			Listeners:  make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

// Select remembers the menu choice and tells the listeners about it.
func (s *GlobalClientState) Select(d game.Difficulty, m game.Mode) {
	s.Difficulty, s.Mode = d, m
	s.Notify()
}

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}

// gamePath is the route of a game at the given difficulty and mode.
func gamePath(d game.Difficulty, m game.Mode) string {
	return "/game/" + m.String() + "/" + d.String()
}
