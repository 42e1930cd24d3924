package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/pipes/constant"
	"github.com/lixenwraith/pipes/pipe"
	"github.com/lixenwraith/pipes/terminal"
)

var rootCmd = &cobra.Command{
	Use:   "pipes [delay-ms]",
	Short: "Pipes draws a wandering, color cycling box-drawing line in the terminal",
	Long: `Pipes draws a single pipe that wanders across the terminal, turning at right angles
and cycling through hues. The optional argument is the frame delay in milliseconds (default 50).

Environment:
  ` + constant.EnvStyle + `  glyph set: double, single, heavy, rounded
  ` + constant.EnvSeed + `   fixed random seed
  ` + constant.EnvDebug + `  write a debug log to logs/pipes.log`,
	// The only input is one positional number; anything else is treated as a bad delay
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipe.LoadConfig(args, os.Getenv)
		fds := []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())}
		return run(cmd.Context(), cfg, os.Stdout, fds)
	},
}

// Execute runs the root command until a termination signal arrives
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pipes: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run sizes the grid from the first terminal among fds and animates onto out
func run(ctx context.Context, cfg pipe.Config, out io.Writer, fds []int) error {
	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync() //nolint:errcheck

	width, height, err := terminal.Size(fds...)
	if err != nil {
		logger.Error("terminal size", zap.Error(err))
		return fmt.Errorf("failed to determine terminal size: %w", err)
	}

	if mode := terminal.DetectColorMode(os.Getenv); mode != terminal.ColorModeTrueColor {
		logger.Warn("terminal may not render 24-bit color", zap.Stringer("detected", mode))
	}

	logger.Info("starting",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Duration("delay", cfg.Delay),
		zap.String("glyphs", cfg.Glyphs.Name),
		zap.Bool("seeded", cfg.HasSeed),
	)

	p, err := pipe.New(cfg, width, height, terminal.NewOutput(out), cfg.NewRand(), logger)
	if err != nil {
		return err
	}

	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
