package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
)

// Phase is the state of the session controller.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhasePlaying
	PhaseComplete
	PhaseTimeUp
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	case PhaseTimeUp:
		return "time-up"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is one of the end-of-game states.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseTimeUp || p == PhaseGameOver
}

// SessionConfig holds the collaborators of a Session.
type SessionConfig struct {
	Tuning    *Tuning
	Scheduler Scheduler
	Renderer  Renderer
	Events    EventLogger // optional
	Rand      *rand.Rand  // optional, seeded randomly if nil
}

// Session is the game controller: it owns every piece of state of one game
// and routes player input, timer ticks and animation frames to the board,
// the scorer and, in hell mode, the physics engine.
//
// A Session is not safe for concurrent use: all calls, including the
// callbacks it schedules, must come from a single goroutine (see Scheduler).
type Session struct {
	tuning *Tuning
	sched  Scheduler
	ui     Renderer
	events EventLogger
	rng    *rand.Rand

	// narrate renders the final summary; swapped in tests.
	narrate func(*Report) (string, error)

	id         string
	generation int
	seq        int
	phase      Phase
	difficulty Difficulty
	mode       Mode

	board   *Board
	scorer  *Scorer
	timer   *Timer
	physics *Physics
	frames  Handle
	pending []Handle
	report  *Report
}

// NewSession creates a session waiting for a difficulty to be selected.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Tuning == nil || cfg.Scheduler == nil || cfg.Renderer == nil {
		return nil, fmt.Errorf("session needs a tuning table, a scheduler and a renderer")
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		tuning:  cfg.Tuning,
		sched:   cfg.Scheduler,
		ui:      cfg.Renderer,
		events:  cfg.Events,
		rng:     rng,
		narrate: Narrate,
		phase:   PhaseSelecting,
	}, nil
}

// ID of the current game; it changes on every start and reset.
func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Difficulty() Difficulty { return s.difficulty }
func (s *Session) Mode() Mode             { return s.mode }

// Report is the terminal report of the current game, or nil while playing.
func (s *Session) Report() *Report { return s.report }

// SelectDifficulty starts a new game at the given tier and mode, discarding
// any game in progress.
func (s *Session) SelectDifficulty(d Difficulty, m Mode) {
	if d < 0 || d >= numDifficulties || (m != Classic && m != Hell) {
		klog.V(1).Infof("SelectDifficulty: ignoring %d/%d", d, m)
		return
	}
	s.start(d, m)
}

// Reset restarts with the same difficulty and mode. It does nothing while
// no difficulty has been chosen.
func (s *Session) Reset() {
	if s.phase == PhaseSelecting {
		return
	}
	klog.Infof("Session %s: reset", s.id)
	s.emit(EventReset, nil, 0)
	s.start(s.difficulty, s.mode)
}

// Back abandons the current game and returns to difficulty selection.
func (s *Session) Back() {
	if s.phase == PhaseSelecting {
		return
	}
	klog.Infof("Session %s: back to menu", s.id)
	s.teardown()
	s.phase = PhaseSelecting
	s.emit(EventBack, nil, 0)
}

// ClickCard flips a card in classic mode. Invalid clicks are ignored.
func (s *Session) ClickCard(i int) {
	if s.phase != PhasePlaying || s.mode != Classic {
		return
	}
	s.flip(i)
}

// MovePointer moves the hell-mode paddle under the pointer.
func (s *Session) MovePointer(x float64) {
	if s.phase != PhasePlaying || s.physics == nil {
		return
	}
	s.physics.MovePaddle(x)
}

// Launch puts a ball in play if one is waiting.
func (s *Session) Launch() {
	if s.phase != PhasePlaying || s.physics == nil {
		return
	}
	if !s.physics.Launch() {
		klog.V(1).Infof("Session %s: launch ignored", s.id)
		return
	}
	klog.V(1).Infof("Session %s: ball launched, %d left", s.id, s.physics.Stock)
	s.emit(EventLaunch, nil, 0)
}

// Status returns the heads-up display snapshot.
func (s *Session) Status() Status {
	st := Status{
		Phase:      s.phase,
		Difficulty: s.difficulty,
		Mode:       s.mode,
		Remaining:  FormatClock(TimeLimit),
		TotalPairs: PairsPerGame,
	}
	if s.scorer != nil {
		st.Score = s.scorer.Score
		st.Combo = s.scorer.Combo
		st.Attempts = s.scorer.Attempts
		st.Misses = s.scorer.Misses
	}
	if s.board != nil {
		st.MatchedPairs = s.board.MatchedPairs()
		st.TotalPairs = s.board.TotalPairs()
	}
	if s.timer != nil {
		st.Remaining = FormatClock(s.timer.Remaining())
	}
	if s.physics != nil {
		st.BallStock = s.physics.Stock
	}
	return st
}

// Slots returns the card views of the current board.
func (s *Session) Slots() []SlotView {
	if s.board == nil {
		return nil
	}
	views := make([]SlotView, len(s.board.Slots))
	for i, slot := range s.board.Slots {
		views[i] = SlotView{Index: slot.Index, State: slot.State}
		if slot.State != Hidden {
			views[i].Face = slot.Value
		}
	}
	return views
}

// Frame returns the current hell-mode frame. ok is false in classic mode.
func (s *Session) Frame() (frame Frame, ok bool) {
	p := s.physics
	if p == nil {
		return frame, false
	}
	frame = Frame{
		Width:       s.tuning.Hell.CanvasWidth,
		Height:      s.tuning.Hell.CanvasHeight,
		Paddle:      p.Paddle,
		Targets:     append([]Target(nil), p.Targets...),
		Slots:       s.Slots(),
		Stock:       p.Stock,
		AwaitLaunch: p.AwaitingLaunch(),
	}
	if p.Ball != nil {
		ball := *p.Ball
		frame.Ball = &ball
	}
	return frame, true
}

func (s *Session) start(d Difficulty, m Mode) {
	deck := s.tuning.BuildDeck(d)
	if err := deck.Validate(); err != nil {
		klog.Errorf("Session: cannot start %s/%s: %v", d, m, err)
		return
	}
	s.teardown()
	s.id = uuid.NewString()
	s.difficulty, s.mode = d, m
	s.board = NewBoard(Shuffle(deck, s.rng))
	s.scorer = &Scorer{}
	s.report = nil
	s.physics = nil

	gen := s.generation
	s.timer = NewTimer(s.sched, TimeLimit, s.tuning.Timing.TimerPeriod)
	s.timer.OnTick = func(time.Duration) {
		if s.current(gen) {
			s.emit(EventTick, nil, 0)
		}
	}
	s.timer.OnTimeUp = func() {
		if s.current(gen) {
			s.finish(OutcomeTimeUp)
		}
	}
	if m == Hell {
		s.physics = NewPhysics(s.tuning.Hell, s.board, s.tuning.Level(d).BallStock, s.rng)
		s.frames = s.sched.Every(s.tuning.Timing.FramePeriod, func() {
			if s.current(gen) {
				s.frame()
			}
		})
	}

	s.phase = PhasePlaying
	s.timer.Start()
	klog.Infof("Session %s: started %s/%s", s.id, d, m)
	s.render()
	s.emit(EventStart, nil, 0)
}

// teardown stops every schedule of the current game and invalidates the
// callbacks already queued for it.
func (s *Session) teardown() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.frames != nil {
		s.frames.Cancel()
		s.frames = nil
	}
	for _, h := range s.pending {
		h.Cancel()
	}
	s.pending = s.pending[:0]
}

func (s *Session) current(gen int) bool {
	return gen == s.generation && s.phase == PhasePlaying
}

// after schedules fn for the current game only.
func (s *Session) after(d time.Duration, fn func()) {
	gen := s.generation
	s.pending = append(s.pending, s.sched.After(d, func() {
		if !s.current(gen) {
			klog.V(1).Infof("Session %s: dropping stale callback", s.id)
			return
		}
		fn()
	}))
}

func (s *Session) flip(i int) {
	outcome := s.board.Flip(i)
	switch outcome {
	case FlipRejected:
		klog.V(1).Infof("Session %s: flip of slot %d ignored", s.id, i)
		return
	case FlipMatch:
		s.after(s.tuning.Timing.MatchReveal, s.resolve)
	case FlipMismatch:
		s.after(s.tuning.Timing.MismatchReveal, s.resolve)
	}
	klog.V(1).Infof("Session %s: flipped slot %d (%s)", s.id, i, s.board.Slots[i].Value)
	s.emit(EventFlip, []int{i}, 0)
	s.renderBoard()
}

func (s *Session) resolve() {
	pair, matched, ok := s.board.Resolve()
	if !ok {
		return
	}
	if !matched {
		s.scorer.Miss()
		s.renderBoard()
		s.ui.ShowMessage(Message{Text: "Try again!", Kind: MessageInfo})
		s.emit(EventMismatch, pair[:], 0)
		return
	}

	points := s.scorer.Match(s.timer.Elapsed())
	klog.V(1).Infof("Session %s: matched %v for %d points (combo %d)", s.id, pair, points, s.scorer.Combo)
	s.renderBoard()
	s.emit(EventMatch, pair[:], points)
	if s.board.Complete() {
		s.finish(OutcomeComplete)
	}
}

func (s *Session) frame() {
	p := s.physics
	p.Orbit()
	res := p.Step()
	for _, i := range res.Contacts {
		s.flip(i)
	}
	if res.Lost {
		s.ballLost()
	}
	if frame, ok := s.Frame(); ok {
		s.ui.RenderFrame(frame)
	}
}

func (s *Session) ballLost() {
	klog.V(1).Infof("Session %s: ball lost, %d left", s.id, s.physics.Stock)
	s.emit(EventBallLost, nil, 0)
	s.after(s.tuning.Timing.BallRespawn, func() {
		if s.physics.Rearm() {
			s.ui.ShowMessage(Message{
				Text: fmt.Sprintf("Ball lost! %d left, launch when ready.", s.physics.Stock),
				Kind: MessageInfo,
			})
			return
		}
		if s.physics.Exhausted() && !s.board.Complete() {
			s.finish(OutcomeGameOver)
		}
	})
}

func (s *Session) finish(outcome Outcome) {
	if s.phase != PhasePlaying {
		return
	}
	s.teardown()

	remaining := s.timer.Remaining()
	r := &Report{
		SessionID:    s.id,
		Difficulty:   s.difficulty,
		Mode:         s.mode,
		Outcome:      outcome,
		MatchedPairs: s.board.MatchedPairs(),
		TotalPairs:   s.board.TotalPairs(),
		Elapsed:      s.timer.Elapsed(),
		Remaining:    remaining,
		Attempts:     s.scorer.Attempts,
		Misses:       s.scorer.Misses,
		Combo:        s.scorer.Combo,
		MaxCombo:     s.scorer.MaxCombo,
		Breakdown:    s.scorer.Final(remaining),
	}
	r.Rating = RateReport(r)
	s.report = r

	var event EventType
	switch outcome {
	case OutcomeComplete:
		s.phase, event = PhaseComplete, EventComplete
	case OutcomeTimeUp:
		s.phase, event = PhaseTimeUp, EventTimeUp
	default:
		s.phase, event = PhaseGameOver, EventGameOver
	}
	klog.Infof("Session %s: %s with %d/%d pairs, final score %d (%s)",
		s.id, outcome, r.MatchedPairs, r.TotalPairs, r.Breakdown.Total, r.Rating.Tier)

	text, err := s.narrate(r)
	if err != nil {
		klog.Warningf("Session %s: %v, using plain summary", s.id, err)
		text = PlainSummary(r)
	}
	s.render()
	s.ui.ShowMessage(Message{Text: text, Kind: MessageSuccess})
	s.emit(event, nil, 0)
}

func (s *Session) render() {
	if frame, ok := s.Frame(); ok {
		s.ui.RenderFrame(frame)
		return
	}
	s.ui.RenderBoard(s.Slots())
}

// renderBoard redraws the classic grid; hell mode redraws on every frame.
func (s *Session) renderBoard() {
	if s.mode == Classic {
		s.ui.RenderBoard(s.Slots())
	}
}

func (s *Session) emit(t EventType, slots []int, points int) {
	if s.events == nil {
		return
	}
	s.seq++
	s.events.Log(GameEvent{
		Seq:     s.seq,
		Type:    t,
		Session: s.id,
		Slots:   append([]int(nil), slots...),
		Points:  points,
		Status:  s.Status(),
		Report:  s.report,
	})
}
