package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "findadoc",
		Short:         "Natural-language doctor search",
		Long:          "findadoc reads a free-text doctor search such as \"cardiologist in Chicago\".\nparse shows how a query is understood; search runs it against the provider store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newParseCmd(),
		newSearchCmd(),
	)

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
