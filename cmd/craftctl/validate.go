package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/storage"
)

func validateCmd() *cobra.Command {
	var system, world string
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a recipe file against the schema and report load warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, info, warnings, err := decodeFile(args[0], storage.FileInfo{System: system, World: world})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d recipes (system %q, world %q)\n", args[0], len(recipes), info.System, info.World)
			for _, w := range warnings {
				fmt.Fprintf(out, "  warning %s: %s\n", w.Code, w.Message)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&system, "system", "", "Game system assumed when the file has no fileInfo")
	cmd.Flags().StringVar(&world, "world", "", "World assumed when the file has no fileInfo")
	return cmd
}

func decodeFile(path string, env storage.FileInfo) (domain.RecipeCollection, storage.FileInfo, []storage.Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, storage.FileInfo{}, nil, err
	}
	return storage.NewCodec(nil).Decode(data, env)
}
