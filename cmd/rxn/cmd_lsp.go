package main

import (
	"github.com/dhamidi/rxn/mechanism"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mechanism.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}
}
