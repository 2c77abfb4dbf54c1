package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tools and their parameters",
		Args:  cobra.NoArgs,
		RunE:  runListCmd,
	}
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	registry, _, err := newRegistry(cmd, true)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, tool := range registry.Tools() {
		fmt.Fprintf(w, "%s\t%s\n", tool.Operation(), tool.Description)
		for _, p := range tool.Parameters {
			flags := []string{p.Type}
			if p.Required {
				flags = append(flags, "required")
			}
			if p.Default != nil {
				flags = append(flags, fmt.Sprintf("default %v", p.Default))
			}
			if len(p.Enum) > 0 {
				flags = append(flags, strings.Join(p.Enum, "|"))
			}
			fmt.Fprintf(w, "  %s\t%s\n", p.Name, strings.Join(flags, ", "))
		}
	}
	return w.Flush()
}
