package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "potcatalog:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "potcatalog",
		Short: "Catalog flower pots by name, location and flowers",
		Long: `potcatalog keeps an in-memory catalog of flower pots.

Run it as a web app (serve) or as a terminal app (tui). The catalog always
starts empty; configuration comes from POTCATALOG_* environment variables.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newTUICmd())
	return root
}
