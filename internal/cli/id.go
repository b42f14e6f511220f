package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chentanran/allschemas/strcase"
)

func newIDCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:               "id",
		Short:             "Print random identifiers for schema entries",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			for i := 0; i < n; i++ {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strcase.RandomID()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of identifiers")
	return cmd
}
