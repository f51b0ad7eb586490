package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is overwritten at build time with -ldflags
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "craftctl",
		Short:         "Offline tools for craftbench recipe files",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(validateCmd())
	root.AddCommand(listCmd())
	root.AddCommand(defaultsCmd())
	return root
}
