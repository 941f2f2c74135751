package game

import (
	"math"
	"math/rand/v2"
)

// Ball is the single hell-mode projectile.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Paddle is the player's bat, anchored near the bottom of the canvas.
// X and Y are its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Target is the on-canvas geometry of a card slot. X and Y are the top-left
// corner, which orbits around (BaseX, BaseY).
type Target struct {
	X, Y          float64
	BaseX, BaseY  float64
	Angle         float64
	OrbitRadius   float64
	AngularSpeed  float64
	Width, Height float64
}

// StepResult is what a physics step produced that the session must act on.
type StepResult struct {
	// Contacts are the hidden slots the ball hit in this step, in slot order.
	Contacts []int
	// Lost is set when the ball left the bottom of the canvas.
	Lost bool
}

// Physics is the hell-mode simulation: ball, paddle, ball stock and the
// orbiting card targets. It reads the Board to skip matched slots and to know
// which ones are still hidden, but never changes it.
type Physics struct {
	cfg   HellConfig
	board *Board
	rng   *rand.Rand

	Ball     *Ball
	Paddle   Paddle
	Targets  []Target
	Stock    int
	awaiting bool
}

// NewPhysics lays the board's slots out on a Columns x Rows grid, each with a
// random orbit, and waits for the first launch.
func NewPhysics(cfg HellConfig, board *Board, stock int, rng *rand.Rand) *Physics {
	p := &Physics{
		cfg:   cfg,
		board: board,
		rng:   rng,
		Paddle: Paddle{
			X:      (cfg.CanvasWidth - cfg.PaddleWidth) / 2,
			Y:      cfg.CanvasHeight - cfg.PaddleBottomOffset,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
		Targets:  make([]Target, len(board.Slots)),
		Stock:    stock,
		awaiting: true,
	}
	cellWidth := cfg.CanvasWidth / float64(cfg.Columns)
	for i := range p.Targets {
		col, row := i%cfg.Columns, i/cfg.Columns
		speed := cfg.OrbitSpeedMin + rng.Float64()*(cfg.OrbitSpeedMax-cfg.OrbitSpeedMin)
		if rng.IntN(2) == 0 {
			speed = -speed
		}
		t := Target{
			BaseX:        float64(col)*cellWidth + (cellWidth-cfg.CardWidth)/2,
			BaseY:        cfg.GridTop + float64(row)*(cfg.CardHeight+cfg.RowGap),
			Angle:        rng.Float64() * 2 * math.Pi,
			OrbitRadius:  cfg.OrbitRadiusMin + rng.Float64()*(cfg.OrbitRadiusMax-cfg.OrbitRadiusMin),
			AngularSpeed: speed,
			Width:        cfg.CardWidth,
			Height:       cfg.CardHeight,
		}
		t.place()
		p.Targets[i] = t
	}
	return p
}

func (t *Target) place() {
	t.X = t.BaseX + t.OrbitRadius*math.Cos(t.Angle)
	t.Y = t.BaseY + t.OrbitRadius*math.Sin(t.Angle)
}

// AwaitingLaunch reports whether a ball can be launched right now.
func (p *Physics) AwaitingLaunch() bool { return p.awaiting && p.Stock > 0 && p.Ball == nil }

// Launch puts a new ball in play above the paddle centre, moving up with a
// little horizontal jitter. It is a no-op unless AwaitingLaunch.
func (p *Physics) Launch() bool {
	if !p.AwaitingLaunch() {
		return false
	}
	p.Ball = &Ball{
		X:      p.Paddle.X + p.Paddle.Width/2,
		Y:      p.Paddle.Y - p.cfg.BallRadius,
		DX:     (p.rng.Float64() - 0.5) * p.cfg.LaunchJitter,
		DY:     -p.cfg.LaunchSpeed,
		Radius: p.cfg.BallRadius,
	}
	p.Stock--
	p.awaiting = false
	return true
}

// Rearm returns to awaiting-launch after a lost ball. It reports false when
// the stock is exhausted.
func (p *Physics) Rearm() bool {
	if p.Ball != nil || p.Stock <= 0 {
		return false
	}
	p.awaiting = true
	return true
}

// Exhausted reports whether there is neither a ball in play nor one left to launch.
func (p *Physics) Exhausted() bool { return p.Ball == nil && p.Stock <= 0 }

// MovePaddle centres the paddle on pointer x, kept inside the canvas.
func (p *Physics) MovePaddle(x float64) {
	p.Paddle.X = min(max(x-p.Paddle.Width/2, 0), p.cfg.CanvasWidth-p.Paddle.Width)
}

// Orbit advances the idle animation of every unmatched target.
func (p *Physics) Orbit() {
	for i := range p.Targets {
		if p.board.Slots[i].State == Matched {
			continue
		}
		t := &p.Targets[i]
		t.Angle = math.Mod(t.Angle+t.AngularSpeed, 2*math.Pi)
		t.place()
	}
}

// Step advances the ball by one tick and resolves its collisions.
func (p *Physics) Step() StepResult {
	var res StepResult
	b := p.Ball
	if b == nil {
		return res
	}
	b.X += b.DX
	b.Y += b.DY

	p.collideWalls(b)
	p.collidePaddle(b)
	for i := range p.Targets {
		if p.board.Slots[i].State == Matched {
			continue
		}
		if !p.collideTarget(b, &p.Targets[i]) {
			continue
		}
		if p.board.Slots[i].State == Hidden {
			res.Contacts = append(res.Contacts, i)
		}
	}

	b.DX = clamp(b.DX, p.cfg.MaxSpeed)
	b.DY = clamp(b.DY, p.cfg.MaxSpeed)

	if b.Y > p.cfg.CanvasHeight {
		p.Ball = nil
		res.Lost = true
	}
	return res
}

func (p *Physics) collideWalls(b *Ball) {
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.DX = math.Abs(b.DX)
	} else if b.X+b.Radius > p.cfg.CanvasWidth {
		b.X = p.cfg.CanvasWidth - b.Radius
		b.DX = -math.Abs(b.DX)
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.DY = math.Abs(b.DY)
	}
}

// collidePaddle bounces a falling ball off the paddle; where it strikes
// across the width sets the new horizontal speed.
func (p *Physics) collidePaddle(b *Ball) {
	pad := p.Paddle
	if b.DY <= 0 {
		return
	}
	if b.X < pad.X || b.X > pad.X+pad.Width {
		return
	}
	if b.Y+b.Radius < pad.Y || b.Y-b.Radius > pad.Y+pad.Height {
		return
	}
	hitOffset := (b.X - pad.X) / pad.Width
	b.DY = -math.Abs(b.DY)
	b.DX = (hitOffset - 0.5) * p.cfg.PaddleSteer
	b.Y = pad.Y - b.Radius
}

// collideTarget reflects the ball off the edge of t nearest to its centre
// and pushes it clear of t along that axis.
func (p *Physics) collideTarget(b *Ball, t *Target) bool {
	left, right := t.X, t.X+t.Width
	top, bottom := t.Y, t.Y+t.Height
	nearestX := min(max(b.X, left), right)
	nearestY := min(max(b.Y, top), bottom)
	dx, dy := b.X-nearestX, b.Y-nearestY
	if dx*dx+dy*dy > b.Radius*b.Radius {
		return false
	}

	dLeft, dRight := math.Abs(b.X-left), math.Abs(b.X-right)
	dTop, dBottom := math.Abs(b.Y-top), math.Abs(b.Y-bottom)
	if min(dLeft, dRight) < min(dTop, dBottom) {
		if dLeft < dRight {
			b.DX = -math.Abs(b.DX)
			b.X = left - b.Radius
		} else {
			b.DX = math.Abs(b.DX)
			b.X = right + b.Radius
		}
	} else {
		if dTop < dBottom {
			b.DY = -math.Abs(b.DY)
			b.Y = top - b.Radius
		} else {
			b.DY = math.Abs(b.DY)
			b.Y = bottom + b.Radius
		}
	}
	return true
}

func clamp(v, limit float64) float64 {
	return min(max(v, -limit), limit)
}
