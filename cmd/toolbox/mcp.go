package main

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/api/mcpserver"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/infrastructure/server"
)

// NewMCPCmd creates the mcp command.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve tools over MCP on stdin/stdout",
		Long: `Mcp speaks the Model Context Protocol over stdin and stdout, for clients
that launch the toolbox as a subprocess. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: runMCPCmd,
	}
}

func runMCPCmd(cmd *cobra.Command, _ []string) error {
	registry, logger, err := newRegistry(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Serving MCP over stdio")
	return mcpserver.NewServer(registry, server.Version).RunStdio(cmd.Context())
}
