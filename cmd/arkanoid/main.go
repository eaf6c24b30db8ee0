// arkanoid is a terminal remake of the classic block-breaking arcade game.
//
// Usage:
//
//	arkanoid                 - Play with the default or user config
//	arkanoid scores          - Show the high score table
//	arkanoid serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.arkanoid/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcade-tui/arkanoid/internal/audio"
	"github.com/arcade-tui/arkanoid/internal/config"
	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/platform/tui"
	"github.com/arcade-tui/arkanoid/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string

	// Play flags
	flagConfig     string
	flagColumns    int
	flagRows       int
	flagLives      int
	flagBackground string
	flagHardcore   bool
	flagNoSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break all the blocks in your terminal",
	Long: `Arkanoid is a terminal block-breaking game. Bounce the ball off your
platform, destroy the whole wall of blocks, and keep your lives.

Controls:
  A/D, arrows - Move platform
  Enter       - Release the ball
  Space       - Start / pause / resume
  H           - Toggle hardcore (one life)
  M           - Toggle music
  R/Delete    - Reset the level
  Q/Ctrl+C    - Quit

Examples:
  arkanoid
  arkanoid --columns 12 --rows 6
  arkanoid --background darkcyan --hardcore
  arkanoid --config ./my-arkanoid.yaml
  arkanoid scores
  arkanoid serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().IntVar(&flagColumns, "columns", 0, "Number of block columns (overrides config)")
	rootCmd.Flags().IntVar(&flagRows, "rows", 0, "Number of block rows (overrides config)")
	rootCmd.Flags().IntVar(&flagLives, "lives", 0, "Starting lives (overrides config)")
	rootCmd.Flags().StringVar(&flagBackground, "background", "", "Background color: black, white or darkcyan")
	rootCmd.Flags().BoolVar(&flagHardcore, "hardcore", false, "Start in one-life mode")
	rootCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable music entirely")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	if err := validateConfig(cfg); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	theme, err := tui.ThemeByName(cfg.Display.Background)
	if err != nil {
		return err
	}

	// Terminal size; Bubble Tea sends the real size on startup anyway.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var player *audio.Player
	if !flagNoSound {
		player = audio.NewPlayer()
		if initErr := player.Init(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
			player = nil
		}
	}

	runErr := tui.Run(cfg, rt, store, player, theme, flagHardcore)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	return runErr
}

// applyFlagOverrides lets explicitly set CLI flags win over the YAML config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("columns") {
		cfg.Layout.Columns = flagColumns
	}
	if flags.Changed("rows") {
		cfg.Layout.Rows = flagRows
	}
	if flags.Changed("lives") {
		cfg.Gameplay.Lives = flagLives
	}
	if flags.Changed("background") {
		cfg.Display.Background = flagBackground
	}
}

func validateConfig(cfg config.Config) error {
	if cfg.Layout.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", cfg.Layout.Columns)
	}
	if cfg.Layout.Rows < 1 {
		return fmt.Errorf("rows must be at least 1, got %d", cfg.Layout.Rows)
	}
	if cfg.Gameplay.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Physics.BallSpeed <= 0 {
		return fmt.Errorf("ball_speed must be positive, got %d", cfg.Physics.BallSpeed)
	}
	if cfg.Physics.PlatformSpeed <= 0 {
		return fmt.Errorf("platform_speed must be positive, got %d", cfg.Physics.PlatformSpeed)
	}
	if cfg.Gameplay.SpeedGrowthPct < 0 {
		return fmt.Errorf("speed_growth_pct must not be negative, got %d", cfg.Gameplay.SpeedGrowthPct)
	}
	return nil
}
