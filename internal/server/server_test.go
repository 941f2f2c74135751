package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/janpfeifer/GoMatch/internal/config"
	"k8s.io/klog/v2"
)

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Failed to connect to server: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status OK for %s, got %v", url, resp.Status)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return string(bodyBytes)
}

func TestServerRun(t *testing.T) {
	// Use a background context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Default()
	cfg.WebDir = t.TempDir()

	// Start the server in a goroutine, on an automatically chosen port
	errCh := make(chan error, 1)
	started := make(chan *ServerState, 1)
	go func() {
		errCh <- Run(ctx, &cfg, started)
	}()

	var state *ServerState
	select {
	case state = <-started:
	case err := <-errCh:
		t.Fatalf("Server failed to start: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("Server took too long to start")
	}

	// The go-app framework generates standard HTML, with our app name in it.
	body := get(t, "http://"+state.Address+"/")
	if !strings.Contains(body, "GoMatch") {
		t.Errorf("Expected body to contain 'GoMatch', got body: %s", body)
	}

	if body := get(t, "http://"+state.Address+"/healthz"); !strings.HasPrefix(body, "ok") {
		t.Errorf("Expected health check to report ok, got %q", body)
	}

	// Cancel the context to stop the server
	cancel()

	// Wait for the server to shutdown cleanly
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Server shut down with error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Errorf("Server took too long to shut down")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AppName = ""
	if err := Run(context.Background(), &cfg, nil); err == nil {
		t.Errorf("Expected an error for an empty app name")
	}
}

func TestRequestsAreLoggedThroughKlog(t *testing.T) {
	var buf bytes.Buffer
	klog.LogToStderr(false)
	klog.SetOutput(&buf)
	defer func() {
		klog.SetOutput(os.Stderr)
		klog.LogToStderr(true)
	}()

	cfg := config.Default()
	cfg.WebDir = t.TempDir()
	rec := httptest.NewRecorder()
	NewRouter(&cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	klog.Flush()

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %d", rec.Code)
	}
	logged := buf.String()
	if !strings.Contains(logged, "GET") || !strings.Contains(logged, "/healthz") {
		t.Errorf("Expected the request in the klog output, got %q", logged)
	}
}
