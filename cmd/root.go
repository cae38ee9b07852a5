// Package cmd is the command line entry point: the HTTP server plus offline
// airport and search commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultDataPath = "data/db.json"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amviajes",
		Short:         "AM Viajes flight booking demo",
		Long:          `Airport autocomplete, mock flight search and tickets, over HTTP or from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newAirportsCmd(), newSearchCmd())
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
