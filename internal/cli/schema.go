package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of cards built from the built-in elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := elements.NewFamilies(cardkit.UnknownPassthrough).JSONSchema()
			b, err := cardkit.MarshalValue(doc, "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}
}
