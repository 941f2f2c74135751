package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/janpfeifer/GoMatch/internal/config"
	"github.com/janpfeifer/GoMatch/internal/frontend"
	"github.com/janpfeifer/GoMatch/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// ServerState is published once the server is listening.
type ServerState struct {
	// Address the server is bound to, host:port.
	Address string
}

// klogPrinter sends chi's request log lines to klog.
type klogPrinter struct{}

func (klogPrinter) Print(v ...any) {
	klog.InfoDepth(1, v...)
}

// NewRouter returns the HTTP handler of the server: health check, static
// assets under /web/ and the go-app shell for every other path.
func NewRouter(cfg *config.Config) http.Handler {
	// The web assets and the compiled webassembly
	// are served from cfg.WebDir, the pages by the go-app handler.
	h := &app.Handler{
		Name:        cfg.AppName,
		Title:       cfg.AppName,
		Description: "A memory matching game, with a hell mode",
		Version:     game.Version,
		Styles: []string{
			"/web/css/pico.min.css", // Load pico.css
			"/web/css/main.css",     // Custom styles if any
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: klogPrinter{}, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %s\n", game.Version)
	})
	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(cfg.WebDir))))
	r.Handle("/*", h)
	return r
}

// Run starts the server and blocks until the context is canceled.
// If started is not nil, the server state is sent on it once listening.
func Run(ctx context.Context, cfg *config.Config, started chan<- *ServerState) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := game.DefaultTuning(); err != nil {
		return fmt.Errorf("embedded tuning table: %w", err)
	}

	// Initialize the frontend state for server-side prerendering without panic
	frontend.InitState()

	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Home{} })
	app.RouteWithRegexp("^/game/.*", func() app.Composer { return &frontend.Game{} })

	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}

	srv := &http.Server{Handler: NewRouter(cfg)}
	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server %s started on %s", game.Version, ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- &ServerState{Address: ln.Addr().String()}
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return err
	}

	// Graceful shutdown bounded by cfg.ShutdownTimeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
