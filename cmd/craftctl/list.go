package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osse101/craftbench/internal/quantity"
	"github.com/osse101/craftbench/internal/recipe"
	"github.com/osse101/craftbench/internal/storage"
)

func listCmd() *cobra.Command {
	var query string
	var hidden bool
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the recipes in a file, optionally filtered by a search query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, _, _, err := decodeFile(args[0], storage.FileInfo{})
			if err != nil {
				return err
			}

			store := recipe.NewStore(quantity.NewResolver(nil))
			store.Replace(recipes)
			result := store.Search(context.Background(), query, hidden)

			out := cmd.OutOrStdout()
			if result.NoResults {
				fmt.Fprintf(out, "No recipes match %q.\n", query)
				return nil
			}

			ids := append([]string(nil), result.Visible...)
			sort.Slice(ids, func(i, j int) bool {
				return recipes[ids[i]].Name < recipes[ids[j]].Name
			})
			for _, id := range ids {
				r := recipes[id]
				fmt.Fprintf(out, "%s  %-30s [%s] %d ingredients, %d tags\n", id, r.Name, r.Type, len(r.Ingredients), len(r.Tags))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search text matched against names, descriptions, items and tags")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include recipes marked hidden")
	return cmd
}
