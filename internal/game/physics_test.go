package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhysics(t *testing.T) (*Physics, *Board) {
	t.Helper()
	tuning := MustDefaultTuning()
	board := NewBoard(tuning.BuildDeck(Normal))
	return NewPhysics(tuning.Hell, board, 4, rand.New(rand.NewPCG(3, 4))), board
}

// parkTargets moves every target far away so they cannot interfere.
func parkTargets(p *Physics) {
	for i := range p.Targets {
		p.Targets[i].X, p.Targets[i].Y = -1000, -1000
	}
}

func TestPhysicsLayout(t *testing.T) {
	p, _ := testPhysics(t)
	cfg := p.cfg
	require.Len(t, p.Targets, 8)
	for i, tg := range p.Targets {
		dist := math.Hypot(tg.X-tg.BaseX, tg.Y-tg.BaseY)
		assert.InDelta(t, tg.OrbitRadius, dist, 1e-9, "target %d sits on its orbit", i)
		assert.GreaterOrEqual(t, math.Abs(tg.AngularSpeed), cfg.OrbitSpeedMin)
		assert.LessOrEqual(t, math.Abs(tg.AngularSpeed), cfg.OrbitSpeedMax)
	}
	assert.Less(t, p.Targets[0].BaseX, p.Targets[1].BaseX, "columns run left to right")
	assert.Less(t, p.Targets[0].BaseY, p.Targets[4].BaseY, "second row below the first")
}

func TestPhysicsLaunchRules(t *testing.T) {
	p, _ := testPhysics(t)
	require.True(t, p.AwaitingLaunch())
	require.True(t, p.Launch())
	assert.Equal(t, 3, p.Stock)
	require.NotNil(t, p.Ball)
	assert.InDelta(t, p.Paddle.X+p.Paddle.Width/2, p.Ball.X, 1e-9)
	assert.Equal(t, -p.cfg.LaunchSpeed, p.Ball.DY)
	assert.LessOrEqual(t, math.Abs(p.Ball.DX), p.cfg.LaunchJitter/2)

	assert.False(t, p.Launch(), "ball already active")
	assert.Equal(t, 3, p.Stock)

	p.Ball = nil
	assert.False(t, p.Launch(), "not re-armed yet")
	assert.True(t, p.Rearm())
	assert.True(t, p.Launch())

	p.Ball = nil
	p.Stock = 0
	assert.False(t, p.Rearm())
	assert.False(t, p.Launch())
	assert.True(t, p.Exhausted())
}

func TestPhysicsWalls(t *testing.T) {
	p, _ := testPhysics(t)
	parkTargets(p)
	r := p.cfg.BallRadius

	p.Ball = &Ball{X: r + 1, Y: 200, DX: -3, DY: 0, Radius: r}
	p.Step()
	assert.Equal(t, r, p.Ball.X, "flush against the left wall")
	assert.Equal(t, 3.0, p.Ball.DX)

	p.Ball = &Ball{X: p.cfg.CanvasWidth - r - 1, Y: 200, DX: 3, DY: 0, Radius: r}
	p.Step()
	assert.Equal(t, p.cfg.CanvasWidth-r, p.Ball.X)
	assert.Equal(t, -3.0, p.Ball.DX)

	p.Ball = &Ball{X: 300, Y: r + 1, DX: 0, DY: -4, Radius: r}
	p.Step()
	assert.Equal(t, r, p.Ball.Y)
	assert.Equal(t, 4.0, p.Ball.DY)
}

func TestPhysicsPaddleSteering(t *testing.T) {
	p, _ := testPhysics(t)
	parkTargets(p)
	pad := p.Paddle
	r := p.cfg.BallRadius

	for _, tc := range []struct {
		offset, wantDX float64
	}{
		{0.0, -3},
		{0.5, 0},
		{1.0, 3},
		{0.75, 1.5},
	} {
		p.Ball = &Ball{X: pad.X + tc.offset*pad.Width, Y: pad.Y - r - 1, DX: 0, DY: 2, Radius: r}
		p.Step()
		require.NotNil(t, p.Ball)
		assert.InDelta(t, tc.wantDX, p.Ball.DX, 1e-9, "offset %.2f", tc.offset)
		assert.Equal(t, -2.0, p.Ball.DY)
		assert.Equal(t, pad.Y-r, p.Ball.Y)
	}

	// Rising balls pass through.
	p.Ball = &Ball{X: pad.X + pad.Width/2, Y: pad.Y + 2, DX: 0, DY: -2, Radius: r}
	p.Step()
	assert.Equal(t, -2.0, p.Ball.DY)
}

func TestPhysicsTargetCollision(t *testing.T) {
	p, board := testPhysics(t)
	parkTargets(p)
	r := p.cfg.BallRadius
	tg := &p.Targets[2]
	tg.X, tg.Y = 200, 200

	// Coming up into the bottom edge.
	p.Ball = &Ball{X: tg.X + tg.Width/2, Y: tg.Y + tg.Height + r + 1, DX: 0.5, DY: -3, Radius: r}
	res := p.Step()
	assert.Equal(t, []int{2}, res.Contacts)
	assert.Equal(t, 3.0, p.Ball.DY)
	assert.Equal(t, tg.Y+tg.Height+r, p.Ball.Y, "pushed clear below the card")

	// Coming from the left into the left edge.
	p.Ball = &Ball{X: tg.X - r + 1, Y: tg.Y + tg.Height/2, DX: 2, DY: 0, Radius: r}
	res = p.Step()
	assert.Equal(t, []int{2}, res.Contacts)
	assert.Equal(t, -2.0, p.Ball.DX)
	assert.Equal(t, tg.X-r, p.Ball.X)

	// Face-up cards bounce but are not reported; matched ones are ignored.
	board.Slots[2].State = Flipped
	p.Ball = &Ball{X: tg.X - r + 1, Y: tg.Y + tg.Height/2, DX: 2, DY: 0, Radius: r}
	res = p.Step()
	assert.Empty(t, res.Contacts)
	assert.Equal(t, -2.0, p.Ball.DX)

	board.Slots[2].State = Matched
	p.Ball = &Ball{X: tg.X - r + 1, Y: tg.Y + tg.Height/2, DX: 2, DY: 0, Radius: r}
	res = p.Step()
	assert.Empty(t, res.Contacts)
	assert.Equal(t, 2.0, p.Ball.DX)
}

func TestPhysicsSpeedClampAndLoss(t *testing.T) {
	p, _ := testPhysics(t)
	parkTargets(p)
	r := p.cfg.BallRadius

	p.Ball = &Ball{X: 300, Y: 200, DX: 20, DY: -30, Radius: r}
	p.Step()
	assert.Equal(t, p.cfg.MaxSpeed, p.Ball.DX)
	assert.Equal(t, -p.cfg.MaxSpeed, p.Ball.DY)

	p.Ball = &Ball{X: 20, Y: p.cfg.CanvasHeight - 1, DX: 0, DY: 5, Radius: r}
	res := p.Step()
	assert.True(t, res.Lost)
	assert.Nil(t, p.Ball)
}

func TestPhysicsOrbitSkipsMatched(t *testing.T) {
	p, board := testPhysics(t)
	board.Slots[0].State = Matched
	before := p.Targets
	before = append([]Target(nil), before...)
	p.Orbit()
	assert.Equal(t, before[0], p.Targets[0])
	assert.NotEqual(t, before[1].Angle, p.Targets[1].Angle)
	assert.InDelta(t, p.Targets[1].OrbitRadius,
		math.Hypot(p.Targets[1].X-p.Targets[1].BaseX, p.Targets[1].Y-p.Targets[1].BaseY), 1e-9)
}

func TestPhysicsMovePaddle(t *testing.T) {
	p, _ := testPhysics(t)
	p.MovePaddle(320)
	assert.Equal(t, 320-p.Paddle.Width/2, p.Paddle.X)
	p.MovePaddle(-50)
	assert.Equal(t, 0.0, p.Paddle.X)
	p.MovePaddle(10000)
	assert.Equal(t, p.cfg.CanvasWidth-p.Paddle.Width, p.Paddle.X)
}
