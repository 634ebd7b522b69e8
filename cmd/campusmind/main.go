package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campusmind/cmd/campusmind/chat"
	"campusmind/cmd/campusmind/ui"
	"campusmind/internal/api"
	"campusmind/internal/config"
	"campusmind/internal/logging"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd launches the interactive client when run without arguments.
// It is assigned in init rather than in its declaration because the
// PersistentPreRunE closure refers back to rootCmd.
var rootCmd *cobra.Command

var rootCmdDef = &cobra.Command{
	Use:   "campusmind",
	Short: "CampusMind - University assistant for CUNY & SUNY schools",
	Long: `CampusMind is a terminal client for the university-information assistant.

It answers questions about professors, programs, transfers, and campus life
across CUNY & SUNY schools, citing official handbooks, web search results,
and professor database records.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal and uses its own file logger.
		if cmd == rootCmd {
			return nil
		}
		var err error
		logger, err = logging.NewStderrLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("campusmind %s\n", version)
	},
}

func init() {
	rootCmd = rootCmdDef
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.campusmind/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(professorCmd)
}

// loadEnvironment wires config, settings, and the API client shared by the
// interactive and one-shot paths.
func loadEnvironment(log *zap.Logger) (*config.Config, *config.Settings, *api.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	settings, err := config.LoadSettings(config.DefaultSettingsPath())
	if err != nil {
		return nil, nil, nil, err
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  log,
	})
	return cfg, settings, client, nil
}

func runInteractive() error {
	// Seed a starter config file on first run.
	if configPath == "" {
		_ = config.WriteDefault(filepath.Join(config.DefaultDir(), "config.yaml"))
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	fileLogger, err := logging.NewFileLogger(config.DefaultDir(), level)
	if err != nil {
		return err
	}
	defer func() { _ = fileLogger.Sync() }()

	settings, err := config.LoadSettings(config.DefaultSettingsPath())
	if err != nil {
		return err
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  fileLogger,
	})

	m := chat.New(chat.Config{
		Client:       client,
		Settings:     settings,
		SettingsPath: config.DefaultSettingsPath(),
		Styles:       ui.NewStyles(ui.ThemeByName(cfg.UI.Theme)),
		Logger:       fileLogger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
