// blur runs angle and geometry scenes in the terminal, a desktop window
// or over SSH.
//
// Usage:
//
//	blur list                - List available scenes
//	blur play <scene>        - Run a scene in the terminal
//	blur window <scene>      - Run a scene in a desktop window
//	blur menu                - Pick scenes interactively
//	blur serve               - Start SSH server for remote play
//	blur scores [scene]      - Show stored runs
//	blur polygon <points>    - Print the vertices of a regular polygon
//	blur defaults <scene>    - Print the built-in config of a scene
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.blur/blur.db)
//	--config <path>      - Custom scene config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blur/internal/buildinfo"
	"github.com/vovakirdan/blur/internal/config"
	"github.com/vovakirdan/blur/internal/platform/crash"
	"github.com/vovakirdan/blur/internal/scenes/compass"
	"github.com/vovakirdan/blur/internal/scenes/turret"
	"github.com/vovakirdan/blur/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// logger is set up before any command runs.
var logger = log.Default()

// logFile is open while a terminal-owning command logs to ~/.blur/blur.log.
var logFile *os.File

func main() {
	defer crash.Handle()

	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "blur",
	Short:   "Angle and geometry scenes for the terminal",
	Version: buildinfo.Short(),
	Long: `blur runs small interactive scenes built on an angle and position
math library: a turret defending a ring and a compass demonstrating
every way one heading can chase another.

Available commands:
  list      - Show all available scenes
  play      - Run a scene in the terminal
  window    - Run a scene in a desktop window
  menu      - Interactive scene picker
  serve     - Start SSH server for remote play
  scores    - View stored runs
  polygon   - Print regular polygon vertices
  defaults  - Print the built-in config of a scene

Examples:
  blur list
  blur play turret --difficulty hard
  blur window compass
  blur serve --ssh :2222
  blur polygon 6 --radius 10 --offset 30`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(polygonCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// setup validates global flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	logger = newLogger(cmd, level)
	log.SetDefault(logger)
	return nil
}

// configureScene hands --config and --difficulty to the scene package
// that owns sceneID. An empty id configures every scene.
func configureScene(sceneID string) {
	if sceneID == "" || sceneID == turret.ID {
		turret.SetConfigPath(flagConfig)
		turret.SetDifficultyPreset(flagDifficulty)
	}
	if sceneID == "" || sceneID == compass.ID {
		compass.SetConfigPath(flagConfig)
	}
}

// newLogger writes to stderr, except for commands that own the terminal:
// those log to ~/.blur/blur.log so the screen stays clean.
func newLogger(cmd *cobra.Command, level log.Level) *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          buildinfo.Name,
		Level:           level,
	}

	switch cmd.Name() {
	case "play", "menu":
		closeLog()
		if f, err := openLogFile(); err == nil {
			logFile = f
			return log.NewWithOptions(f, opts)
		}
	}
	return log.NewWithOptions(os.Stderr, opts)
}

// closeLog closes the log file, if any, and sends further logs to stderr.
func closeLog() {
	if logFile == nil {
		return
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          buildinfo.Name,
		Level:           logger.GetLevel(),
	})
	log.SetDefault(logger)

	if err := logFile.Close(); err != nil {
		logger.Warn("could not close log file", "error", err)
	}
	logFile = nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, config.ConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "blur.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
