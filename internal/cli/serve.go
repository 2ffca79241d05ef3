package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/studycoach/internal/api"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/scheduler"
)

// runServe starts the read-only dashboard and the background jobs, then
// blocks until a shutdown signal arrives.
func (a *App) runServe() int {
	log := logger.Default()

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		return 1
	}

	srv := &api.Server{
		Store:      a.Store,
		Roadmap:    a.Roadmap,
		Progress:   a.Progress,
		Flashcards: a.Flashcards,
		Resources:  a.Resources,
		Projects:   a.Projects,
		Tips:       a.Tips,
		Templates:  tmpl,
	}

	sched := scheduler.New(a.Store, a.Tips)
	if err := sched.Start(); err != nil {
		log.Error("failed to start background jobs: %v", err)
		return 1
	}
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:         a.Config.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", a.Config.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("HTTP server error: %v", err)
		return 1
	case sig := <-stop:
		log.Info("received signal %v, initiating graceful shutdown", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("server stopped")
	return 0
}
