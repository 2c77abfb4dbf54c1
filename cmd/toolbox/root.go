package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/config"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/server"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/service"
)

// errToolFailed signals a tool call that ran and reported failure. Its
// report has already been printed, so Execute only sets the exit code.
var errToolFailed = errors.New("tool call failed")

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolbox",
		Short: "Web content extraction and data transformation tools",
		Long: `Toolbox fetches web pages and extracts their text, links and search
results, and transforms data: JSON formatting and validation, JSON/CSV
conversion, text analysis, hashing and encodings.

Tools are served over HTTP and MCP, or run once with "toolbox call".

Configuration comes from defaults, an optional --config file (.yaml, .yml
or .toml) and environment variables, in increasing precedence.`,
		Version:       server.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML or TOML config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log tool calls to stderr")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewCallCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errToolFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadConfig reads --config and the environment, then validates.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger honours the configured level. One-shot commands stay quiet
// unless --verbose is set.
func newLogger(cmd *cobra.Command, cfg *config.Config, quiet bool) *logging.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if quiet && !verbose {
		return logging.NewNop()
	}
	return logging.ForLevel(cfg.Logging.Level, cfg.Logging.Development)
}

// newRegistry builds the provider registry for commands that run tools
// without the HTTP server.
func newRegistry(cmd *cobra.Command, quiet bool) (*service.Registry, *logging.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := newLogger(cmd, cfg, quiet)
	registry, err := server.NewRegistry(cfg, logger, nil)
	if err != nil {
		return nil, nil, err
	}
	return registry, logger, nil
}
