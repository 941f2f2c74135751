package game

// SlotState is the lifecycle of a card on the board.
type SlotState int

const (
	Hidden SlotState = iota
	Flipped
	Matched
)

func (s SlotState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flipped:
		return "flipped"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// CardSlot is one position of the deck on the board.
type CardSlot struct {
	Index int
	Value CardValue
	State SlotState
}

// FlipOutcome tells the caller what a flip request led to.
type FlipOutcome int

const (
	// FlipRejected: the request was ignored.
	FlipRejected FlipOutcome = iota
	// FlipFirst: the card is face up, waiting for a partner.
	FlipFirst
	// FlipMatch: second card flipped and it pairs with the first; resolution is pending.
	FlipMatch
	// FlipMismatch: second card flipped and it does not pair; resolution is pending.
	FlipMismatch
)

// Board is the match state machine: at most two face-up unresolved cards,
// and a resolution lock held from the second flip until Resolve.
type Board struct {
	Slots []CardSlot

	flipped      []int
	processing   bool
	matchedPairs int
}

// NewBoard lays out deck face down.
func NewBoard(deck Deck) *Board {
	b := &Board{Slots: make([]CardSlot, len(deck)), flipped: make([]int, 0, 2)}
	for i, v := range deck {
		b.Slots[i] = CardSlot{Index: i, Value: v, State: Hidden}
	}
	return b
}

// Flip turns slot i face up. It is a no-op returning FlipRejected while a
// resolution is pending, when i is out of range, already face up or matched,
// or when two cards are already face up.
func (b *Board) Flip(i int) FlipOutcome {
	if b.processing || i < 0 || i >= len(b.Slots) || len(b.flipped) >= 2 {
		return FlipRejected
	}
	slot := &b.Slots[i]
	if slot.State != Hidden {
		return FlipRejected
	}
	slot.State = Flipped
	b.flipped = append(b.flipped, i)
	if len(b.flipped) < 2 {
		return FlipFirst
	}

	b.processing = true
	first, second := b.Slots[b.flipped[0]], b.Slots[b.flipped[1]]
	if first.Value == second.Value {
		return FlipMatch
	}
	return FlipMismatch
}

// Resolve settles the pending pair, in flip order: both cards become matched
// or both go back face down. It releases the lock and reports whether the
// pair matched. Without a pending pair it does nothing.
func (b *Board) Resolve() (pair [2]int, matched bool, ok bool) {
	if !b.processing || len(b.flipped) != 2 {
		return pair, false, false
	}
	pair = [2]int{b.flipped[0], b.flipped[1]}
	first, second := &b.Slots[pair[0]], &b.Slots[pair[1]]
	matched = first.Value == second.Value
	if matched {
		first.State, second.State = Matched, Matched
		b.matchedPairs++
	} else {
		first.State, second.State = Hidden, Hidden
	}
	b.flipped = b.flipped[:0]
	b.processing = false
	return pair, matched, true
}

// Processing reports whether the resolution lock is held.
func (b *Board) Processing() bool { return b.processing }

// FlipSet returns the face-up unresolved slots in flip order.
func (b *Board) FlipSet() []int {
	return append([]int(nil), b.flipped...)
}

// MatchedPairs is the number of pairs resolved as matches.
func (b *Board) MatchedPairs() int { return b.matchedPairs }

// TotalPairs is the number of pairs on the board.
func (b *Board) TotalPairs() int { return len(b.Slots) / 2 }

// Complete reports whether every pair is matched.
func (b *Board) Complete() bool { return b.matchedPairs == b.TotalPairs() }
