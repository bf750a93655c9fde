package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/rxn/chem"
	"github.com/dhamidi/rxn/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <equation>",
		Short: "Parse a reaction equation and dump the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unquoted equations arrive as several arguments.
			text := strings.Join(args, " ")

			eq, err := chem.ParseEquation(text)
			if err != nil {
				return fmt.Errorf("parse equation: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(eq); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
