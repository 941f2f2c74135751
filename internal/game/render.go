package game

import "strings"

// MessageKind controls how long a message stays on screen.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
)

func (k MessageKind) String() string {
	if k == MessageSuccess {
		return "success"
	}
	return "info"
}

// Message is a notice for the player.
type Message struct {
	Text string
	Kind MessageKind
}

// AutoDismiss reports whether the presentation layer should clear the
// message after a couple of seconds: info messages do, unless they carry a
// final summary; success messages persist.
func (m Message) AutoDismiss() bool {
	return m.Kind == MessageInfo && m.Text != "" && !strings.Contains(m.Text, SummaryMarker)
}

// SlotView is what the presentation layer needs to draw one card.
type SlotView struct {
	Index int
	State SlotState
	// Face is the card value, set only when the card is face up or matched.
	Face CardValue
}

// Frame is one hell-mode canvas frame.
type Frame struct {
	Width, Height float64
	Ball          *Ball // nil when no ball is in play
	Paddle        Paddle
	Targets       []Target
	Slots         []SlotView
	Stock         int
	AwaitLaunch   bool
}

// Renderer is the presentation boundary the Session draws through.
type Renderer interface {
	RenderBoard(slots []SlotView)
	RenderFrame(frame Frame)
	ShowMessage(msg Message)
}

// Status is the heads-up display snapshot of a Session.
type Status struct {
	Phase        Phase
	Difficulty   Difficulty
	Mode         Mode
	Score        int
	Combo        int
	Attempts     int
	Misses       int
	MatchedPairs int
	TotalPairs   int
	Remaining    string // MM:SS
	BallStock    int
}
