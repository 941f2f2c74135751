package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Home is the difficulty selection page.
type Home struct {
	app.Compo
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	State.Listeners["home"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
}

func (h *Home) OnDismount() {
	delete(State.Listeners, "home")
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) onSelect(d game.Difficulty, m game.Mode) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		klog.Infof("Home: selected %s/%s", d, m)
		State.Select(d, m)
		ctx.Navigate(gamePath(d, m))
	}
}

func (h *Home) renderMode(m game.Mode, title, blurb string) app.UI {
	var buttons []app.UI
	for _, d := range game.Difficulties {
		level := State.Tuning.Level(d)
		class := "outline"
		if d == State.Difficulty && m == State.Mode {
			class = ""
		}
		label := level.Name
		if m == game.Hell {
			label = fmt.Sprintf("%s (%d balls)", level.Name, level.BallStock)
		}
		buttons = append(buttons, app.Button().
			Class(class).
			Text(label).
			OnClick(h.onSelect(d, m)))
	}
	return app.Article().Body(
		app.Header().Body(app.H3().Text(title)),
		app.P().Text(blurb),
		app.Div().Class("grid").Body(buttons...),
	)
}

func (h *Home) Render() app.UI {
	return app.Main().Class("container").Body(
		&TopBar{},
		h.renderMode(game.Classic, "Classic",
			"Flip two cards at a time and find every pair before the two minutes run out."),
		h.renderMode(game.Hell, "Hell mode",
			"The cards float around and only a ball can flip them. Keep it in play with your paddle."),
	)
}
