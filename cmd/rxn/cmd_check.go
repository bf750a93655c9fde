package main

import (
	"fmt"

	"github.com/dhamidi/rxn/mechanism"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.rxn>",
		Short: "Check a mechanism file for grammar and conservation errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics, err := mechanism.CheckFile(args[0])
			if err != nil {
				return fmt.Errorf("read mechanism: %w", err)
			}

			hasErrors := false
			for _, d := range diagnostics {
				fmt.Println(d)
				if d.Severity == mechanism.Error {
					hasErrors = true
				}
			}
			if hasErrors {
				return fmt.Errorf("%s: mechanism has errors", args[0])
			}

			return nil
		},
	}
}
