package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/GoMatch/internal/config"
	"github.com/janpfeifer/GoMatch/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "", "Optional configuration file (yaml, json or toml)")
	flagAddr   = flag.String("addr", "", "Address to listen on, overrides the configuration (default: auto-port on localhost)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		klog.Fatalf("Failed to load configuration: %v", err)
	}
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("%s server listening on http://%s\n", cfg.AppName, state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		klog.Fatal(err)
	}
}
