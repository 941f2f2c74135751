package frontend

import (
	"math"
	"time"

	"github.com/janpfeifer/GoMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	canvasID = "hell-canvas"

	// matchFade is how long, in seconds, a matched target takes to vanish.
	matchFade = 0.6
)

var slotColors = map[game.SlotState]string{
	game.Hidden:  "#3c5a99",
	game.Flipped: "#f4f1de",
	game.Matched: "#81b29a",
}

// canvasPainter draws hell-mode frames on a 2D canvas. Matched targets fade
// out over a few frames instead of disappearing at once.
type canvasPainter struct {
	id    string
	dt    float32
	fades map[int]*gween.Tween
	alpha map[int]float32
}

func newCanvasPainter(id string, framePeriod time.Duration) *canvasPainter {
	p := &canvasPainter{id: id, dt: float32(framePeriod.Seconds())}
	p.reset()
	return p
}

func (p *canvasPainter) reset() {
	if p == nil {
		return
	}
	p.fades = make(map[int]*gween.Tween)
	p.alpha = make(map[int]float32)
}

// targetAlpha advances the fade of slot i and returns its opacity.
func (p *canvasPainter) targetAlpha(i int, state game.SlotState) float32 {
	if state != game.Matched {
		return 1
	}
	tween, found := p.fades[i]
	if !found {
		tween = gween.New(1, 0, matchFade, ease.OutQuad)
		p.fades[i] = tween
		p.alpha[i] = 1
	}
	if p.alpha[i] > 0 {
		p.alpha[i], _ = tween.Update(p.dt)
	}
	return p.alpha[i]
}

func (p *canvasPainter) paint(f game.Frame) {
	if p == nil {
		return
	}
	canvas := app.Window().GetElementByID(p.id)
	if !canvas.Truthy() {
		return
	}
	c2d := canvas.Call("getContext", "2d")
	c2d.Call("clearRect", 0, 0, f.Width, f.Height)

	c2d.Set("textAlign", "center")
	c2d.Set("textBaseline", "middle")
	c2d.Set("font", "32px sans-serif")
	for i, t := range f.Targets {
		slot := f.Slots[i]
		alpha := p.targetAlpha(i, slot.State)
		if alpha <= 0 {
			continue
		}
		c2d.Set("globalAlpha", alpha)
		c2d.Set("fillStyle", slotColors[slot.State])
		c2d.Call("fillRect", t.X, t.Y, t.Width, t.Height)
		if slot.Face != "" {
			c2d.Set("fillStyle", "#222")
			c2d.Call("fillText", string(slot.Face), t.X+t.Width/2, t.Y+t.Height/2)
		}
	}
	c2d.Set("globalAlpha", 1)

	c2d.Set("fillStyle", "#e07a5f")
	c2d.Call("fillRect", f.Paddle.X, f.Paddle.Y, f.Paddle.Width, f.Paddle.Height)

	if b := f.Ball; b != nil {
		c2d.Set("fillStyle", "#f2cc8f")
		c2d.Call("beginPath")
		c2d.Call("arc", b.X, b.Y, b.Radius, 0, 2*math.Pi)
		c2d.Call("fill")
	} else if f.AwaitLaunch {
		c2d.Set("fillStyle", "#ddd")
		c2d.Set("font", "20px sans-serif")
		c2d.Call("fillText", "Click to launch", f.Width/2, f.Height*0.75)
	}
}
