package frontend

import (
	"fmt"
	"strings"
	"time"

	"github.com/janpfeifer/GoMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// MessageDuration is how long an auto-dismissed message stays on screen.
const MessageDuration = 2 * time.Second

// Game is the play page. It owns the game.Session and is its Renderer: every
// session callback arrives on the UI goroutine through ctx.Dispatch.
type Game struct {
	app.Compo
	Error string

	session    *game.Session
	difficulty game.Difficulty
	mode       game.Mode

	status  game.Status
	slots   []game.SlotView
	message game.Message
	// messageSeq identifies the message on screen, so a stale dismiss timer
	// does not clear a newer one.
	messageSeq int

	dispatch func(func())
	canvas   *canvasPainter
}

func (g *Game) OnAppUpdate(ctx app.Context) {
	klog.Infof("Game component: App update available, not reloading not to interrupt the game...")
}

func (g *Game) OnMount(ctx app.Context) {
	klog.Infof("Game component: OnMount called")
	if app.IsServer {
		return
	}
	g.dispatch = func(fn func()) {
		ctx.Dispatch(func(ctx app.Context) { fn() })
	}
	session, err := game.NewSession(game.SessionConfig{
		Tuning:    State.Tuning,
		Scheduler: game.NewClockScheduler(g.dispatch),
		Renderer:  g,
		Events:    game.EventLoggerFunc(g.onEvent),
	})
	if err != nil {
		g.Error = fmt.Sprintf("Failed to create game: %v", err)
		klog.Errorf("Game component: %v", err)
		return
	}
	g.session = session
	g.canvas = newCanvasPainter(canvasID, State.Tuning.Timing.FramePeriod)
}

func (g *Game) OnDismount() {
	klog.Infof("Game component: OnDismount called")
	if g.session != nil {
		g.session.Back()
	}
}

// OnNav starts the game named by the URL, /game/<mode>/<difficulty>.
func (g *Game) OnNav(ctx app.Context) {
	path := app.Window().URL().Path
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	klog.Infof("Game component: Navigated to %s, parts: %v", path, parts)
	if len(parts) < 3 || parts[0] != "game" {
		ctx.Navigate("/")
		return
	}
	m, err := game.ParseMode(parts[1])
	if err != nil {
		g.Error = err.Error()
		return
	}
	d, err := game.ParseDifficulty(parts[2])
	if err != nil {
		g.Error = err.Error()
		return
	}
	g.Error = ""
	g.difficulty, g.mode = d, m
	State.Select(d, m)
	if g.session != nil {
		g.canvas.reset()
		g.session.SelectDifficulty(d, m)
	}
}

// RenderBoard implements game.Renderer.
func (g *Game) RenderBoard(slots []game.SlotView) {
	g.slots = slots
}

// RenderFrame implements game.Renderer.
func (g *Game) RenderFrame(frame game.Frame) {
	g.slots = frame.Slots
	g.canvas.paint(frame)
}

// ShowMessage implements game.Renderer.
func (g *Game) ShowMessage(msg game.Message) {
	g.message = msg
	g.messageSeq++
	if !msg.AutoDismiss() {
		return
	}
	seq := g.messageSeq
	time.AfterFunc(MessageDuration, func() {
		g.dispatch(func() {
			if g.messageSeq == seq {
				g.message = game.Message{}
			}
		})
	})
}

func (g *Game) onEvent(e game.GameEvent) {
	g.status = e.Status
	switch e.Type {
	case game.EventTick:
		return
	case game.EventStart, game.EventReset:
		g.canvas.reset()
	}
	klog.V(1).Infof("Game component: %s", e)
}

func (g *Game) onCardClick(i int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		g.session.ClickCard(i)
	}
}

func (g *Game) onPointerMove(ctx app.Context, e app.Event) {
	el := ctx.JSSrc()
	x := e.Get("offsetX").Float()
	if cw := el.Get("clientWidth").Float(); cw > 0 {
		x *= el.Get("width").Float() / cw
	}
	g.session.MovePointer(x)
}

func (g *Game) onLaunch(ctx app.Context, e app.Event) {
	e.PreventDefault()
	g.session.Launch()
}

func (g *Game) onReset(ctx app.Context, e app.Event) {
	e.PreventDefault()
	g.session.Reset()
}

func (g *Game) onBack(ctx app.Context, e app.Event) {
	e.PreventDefault()
	g.session.Back()
	ctx.Navigate("/")
}

func (g *Game) renderHUD() app.UI {
	st := g.status
	items := []app.UI{
		hudItem("Time", st.Remaining),
		hudItem("Score", fmt.Sprintf("%d", st.Score)),
		hudItem("Combo", fmt.Sprintf("%d", st.Combo)),
		hudItem("Pairs", fmt.Sprintf("%d/%d", st.MatchedPairs, st.TotalPairs)),
		hudItem("Attempts", fmt.Sprintf("%d", st.Attempts)),
	}
	if g.mode == game.Hell {
		items = append(items, hudItem("Balls", fmt.Sprintf("%d", st.BallStock)))
	}
	return app.Div().Class("grid", "hud").Body(items...)
}

func hudItem(label, value string) app.UI {
	return app.Div().Body(
		app.Small().Text(label),
		app.Br(),
		app.Strong().Text(value),
	)
}

func (g *Game) renderBoard() app.UI {
	var cards []app.UI
	for _, slot := range g.slots {
		face := "?"
		if slot.Face != "" {
			face = string(slot.Face)
		}
		card := app.Div().
			Class("card", slot.State.String()).
			Text(face)
		if slot.State == game.Hidden {
			card = card.OnClick(g.onCardClick(slot.Index))
		}
		cards = append(cards, card)
	}
	return app.Div().Class("board").Body(cards...)
}

func (g *Game) renderCanvas() app.UI {
	hell := State.Tuning.Hell
	return app.Canvas().
		ID(canvasID).
		Class("hell").
		Width(int(hell.CanvasWidth)).
		Height(int(hell.CanvasHeight)).
		OnMouseMove(g.onPointerMove).
		OnClick(g.onLaunch)
}

func (g *Game) renderMessage() app.UI {
	if g.message.Text == "" {
		return app.Div().Class("message", "empty")
	}
	return app.Article().Class("message", g.message.Kind.String()).Body(
		app.Pre().Text(g.message.Text),
	)
}

func (g *Game) Render() app.UI {
	if g.Error != "" {
		return app.Main().Class("container").Body(
			app.Article().Body(
				app.H2().Text("Game Error"),
				app.P().Style("color", "red").Text(g.Error),
				app.A().Href("#").OnClick(func(ctx app.Context, e app.Event) {
					e.PreventDefault()
					ctx.Navigate("/")
				}).Text("Return to Home"),
			),
		)
	}

	subtitle := fmt.Sprintf("%s / %s", g.mode, State.Tuning.Level(g.difficulty).Name)
	resetLabel := "Reset"
	if g.status.Phase.Terminal() {
		resetLabel = "Play again"
	}
	var playfield app.UI
	buttons := []app.UI{
		app.Button().Class("secondary").Text(resetLabel).OnClick(g.onReset),
		app.Button().Class("outline").Text("Back to menu").OnClick(g.onBack),
	}
	if g.mode == game.Hell {
		playfield = g.renderCanvas()
		buttons = append([]app.UI{
			app.Button().
				Text("Launch").
				Disabled(g.status.Phase != game.PhasePlaying).
				OnClick(g.onLaunch),
		}, buttons...)
	} else {
		playfield = g.renderBoard()
	}

	return app.Main().Class("container").Body(
		&TopBar{Subtitle: subtitle},
		g.renderHUD(),
		playfield,
		g.renderMessage(),
		app.Div().Class("grid").Body(buttons...),
	)
}
