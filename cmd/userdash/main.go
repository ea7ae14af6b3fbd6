// Package main is the entry point for the userdash CLI and dashboard.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"userdash/internal/cli"
	"userdash/internal/commands"
	"userdash/internal/config"
	"userdash/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create store factory
	factory := func(cfg *config.Config) (*store.Store, error) {
		return store.Open(cfg.StorePath(), clockwork.NewRealClock())
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
