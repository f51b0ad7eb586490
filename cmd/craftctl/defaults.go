package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/osse101/craftbench/internal/quantity"
)

func defaultsCmd() *cobra.Command {
	var types []string
	cmd := &cobra.Command{
		Use:   "defaults [system]",
		Short: "Print the built-in quantity path table for a game system as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				systems := quantity.KnownSystems()
				sort.Strings(systems)
				fmt.Fprintf(out, "Known systems: %s\n", strings.Join(systems, ", "))
				return nil
			}

			table, err := quantity.DefaultTable(args[0], types)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(map[string]quantity.PathTable{args[0]: table}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringSliceVar(&types, "types", nil, "Item types to list when the system has no built-in table")
	return cmd
}
