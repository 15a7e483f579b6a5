package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freelodev/freelo-mcp/config"
	"github.com/freelodev/freelo-mcp/freelo"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *freelo.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "freelo-mcp",
	Short: "MCP server exposing the Freelo API to AI assistants",
	Long: `freelo-mcp bridges the Freelo project management API to AI assistants
over the Model Context Protocol. It exposes read-only tools for projects,
task lists, tasks, comments, users and file downloads, speaking MCP on
standard input and output.

Running the binary without a subcommand starts the server.`,
	PersistentPreRunE: initializeApp,
	RunE:              runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and the Freelo client
func initializeApp(cmd *cobra.Command, args []string) error {
	// version and update must work without credentials
	switch cmd.Name() {
	case "version", "update":
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Freelo client. No request is made here; use the check
	// command to probe credentials.
	client, err = freelo.NewClient(cfg.Freelo.Email, cfg.Freelo.APIKey, logger,
		freelo.WithUserAgent(fmt.Sprintf("freelo-mcp/%s (%s)", version, cfg.Freelo.Email)))
	if err != nil {
		return fmt.Errorf("failed to create Freelo client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger. Everything goes to stderr:
// stdout belongs to the MCP transport.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Console output is only readable on a terminal. When an MCP host
	// spawns us, stderr is a pipe and we emit JSON regardless of config.
	if cfg.Format == "json" || !isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
