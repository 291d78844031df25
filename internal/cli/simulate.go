package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lunixtng/lunixmon/internal/logger"
	"github.com/lunixtng/lunixmon/internal/sim"
	"github.com/lunixtng/lunixmon/internal/ui"
)

// simulateCommand runs the FIFO simulator until interrupted.
func simulateCommand(dir string, sensors int, rate time.Duration, seed int64, offline []int, keep bool) error {
	s, err := sim.New(sim.Options{
		Dir:      dir,
		Count:    sensors,
		Interval: rate,
		Seed:     seed,
		Offline:  offline,
		Keep:     keep,
	}, logger.NewEnvLogger("[sim]"))
	if err != nil {
		return err
	}

	if err := s.Setup(); err != nil {
		return err
	}

	fmt.Printf("%s Feeding %d sensors under %s every %s\n",
		ui.SuccessStyle().Render(ui.SymbolSuccess), sensors, dir, rate)
	if len(offline) > 0 {
		fmt.Printf("  Offline ids: %v\n", offline)
	}
	fmt.Println(ui.MutedStyle().Render("  Press Ctrl+C to stop"))

	// Create context with signal handling for a clean teardown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM to stop the sample loop
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := s.Run(ctx); err != nil {
		return err
	}

	if keep {
		fmt.Printf("Nodes left in place under %s\n", dir)
	}
	return nil
}
