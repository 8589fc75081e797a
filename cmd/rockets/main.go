// rockets is a terminal game about steering fixed-point rockets to fuel cells
// before their tanks run dry.
//
// Usage:
//
//	rockets list             - List game modes
//	rockets play [mode]      - Play a mode (default: rockets)
//	rockets menu             - Pick modes interactively
//	rockets scores [mode]    - Show high scores and run stats
//	rockets serve            - Start SSH server for remote play
//	rockets config           - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 20)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.rockets/scores.db)
//	--log-file <path>    - Write logs to a file (the game owns the terminal)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/games/rockets"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logger  = log.New(io.Discard)
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockets",
	Short: "Rockets - steer to the fuel before the tank runs dry",
	Long: `Rockets is a terminal game built on a small fixed-point particle
simulation. Thrust your rocket around the arena, brake before the walls
and fly through fuel cells to refuel. The run ends when every tank is empty.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores and run stats
  serve    - Start SSH server for remote play
  config   - Print the default config

Examples:
  rockets play
  rockets play rockets_duel --difficulty hard
  rockets menu --log-file rockets.log --log-level debug
  rockets serve --ssh :2222
  rockets scores --interactive`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rockets/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	l, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger, logFile = l, closer
	rockets.SetLogger(logger)
	return nil
}

// newLogger builds the application logger. Without a path, logs are
// discarded so they never tear the game screen.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if path == "" {
		l := log.New(io.Discard)
		l.SetLevel(lvl)
		return l, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockets",
		Level:           lvl,
	})
	return l, f, nil
}
