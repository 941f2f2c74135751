package frontend

import (
	"testing"
	"time"

	"github.com/janpfeifer/GoMatch/internal/game"
)

func TestGamePath(t *testing.T) {
	if got := gamePath(game.Hard, game.Hell); got != "/game/hell/hard" {
		t.Errorf("gamePath(Hard, Hell) = %q", got)
	}
	if got := gamePath(game.Easy, game.Classic); got != "/game/classic/easy" {
		t.Errorf("gamePath(Easy, Classic) = %q", got)
	}
}

func TestTargetFade(t *testing.T) {
	p := newCanvasPainter(canvasID, 100*time.Millisecond)
	if a := p.targetAlpha(0, game.Hidden); a != 1 {
		t.Errorf("hidden target alpha = %v, want 1", a)
	}

	prev := float32(1)
	for frame := 0; frame < 5; frame++ {
		a := p.targetAlpha(2, game.Matched)
		if a > prev {
			t.Fatalf("frame %d: alpha went up from %v to %v", frame, prev, a)
		}
		prev = a
	}
	if prev <= 0 || prev >= 1 {
		t.Errorf("alpha after 0.5s of a %vs fade = %v, want strictly between 0 and 1", matchFade, prev)
	}
	for frame := 0; frame < 5; frame++ {
		prev = p.targetAlpha(2, game.Matched)
	}
	if prev > 0.0001 {
		t.Errorf("alpha after the fade = %v, want 0", prev)
	}

	p.reset()
	if _, found := p.fades[2]; found {
		t.Errorf("reset kept the fade of slot 2")
	}
}
