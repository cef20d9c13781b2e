package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) fieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Print the fields that are redacted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, field := range a.cfg.Fields {
				if _, err := fmt.Fprintln(a.stdout, field); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
