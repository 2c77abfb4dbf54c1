package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// SourceCLI tags calls made with "toolbox call"
const SourceCLI = "cli"

// NewCallCmd creates the call command.
func NewCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [key=value ...]",
		Short: "Run one tool and print its report",
		Long: `Call runs a single tool and prints its text report to stdout. The exit
status is 1 when the tool reports a failure.

A value of the form @path is read from that file; @- reads stdin.

Examples:
  toolbox call extract_text url=https://example.com
  toolbox call hash_data data=hello algorithm=md5
  toolbox call convert_data data=@people.csv source_format=csv target_format=json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCallCmd,
	}
}

func runCallCmd(cmd *cobra.Command, args []string) error {
	params, err := parseParams(args[1:], cmd.InOrStdin())
	if err != nil {
		return err
	}

	registry, logger, err := newRegistry(cmd, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	result, err := registry.Execute(cmd.Context(), args[0], params, &types.Context{Source: SourceCLI})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	if !result.Success {
		return errToolFailed
	}
	return nil
}

// parseParams turns key=value arguments into tool parameters. Values stay
// strings; tools parse booleans and numbers themselves.
func parseParams(args []string, stdin io.Reader) (map[string]any, error) {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", arg)
		}

		if path, isFile := strings.CutPrefix(value, "@"); isFile {
			content, err := readValue(path, stdin)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", key, err)
			}
			value = content
		}
		params[key] = value
	}
	return params, nil
}

func readValue(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
