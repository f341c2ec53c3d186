package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/pixel-spin/config"
)

// activeScreen is restored by the crash handler
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the reel crashes
	defer func() {
		if r := recover(); r != nil {
			if activeScreen != nil {
				activeScreen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPIXEL-SPIN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pixel-spin",
		Short:        "Slot-machine question reel for the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logFile := setupLogging(cfg.Debug)
			if logFile != nil {
				defer logFile.Close()
			}

			return run(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// run owns the terminal for the lifetime of the reel
func run(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	activeScreen = screen
	defer func() {
		if activeScreen != nil {
			activeScreen.Fini()
			activeScreen = nil
		}
	}()

	screen.HideCursor()

	a, err := newApp(cfg, screen)
	if err != nil {
		return err
	}
	err = a.run(ctx)

	screen.Fini()
	activeScreen = nil
	if out := a.summary().render(); out != "" {
		fmt.Println(out)
	}
	return err
}
