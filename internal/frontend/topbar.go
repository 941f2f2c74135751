package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
	// Subtitle is shown next to the title, e.g. the level being played.
	Subtitle string
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	e.PreventDefault()
	ctx.Navigate("/")
}

func (t *TopBar) Render() app.UI {
	var items []app.UI
	if t.Subtitle != "" {
		items = append(items, app.Li().Body(app.Span().Text(t.Subtitle)))
	}
	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().
					Text("GoMatch").
					Style("cursor", "pointer").
					OnClick(t.onBannerClick),
			),
		),
		app.Ul().Body(items...),
	)
}
