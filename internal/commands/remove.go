package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	var number string
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an account permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Removal is irreversible, so the confirmation lives here in
			// the command layer, never in the core.
			if !yes {
				return fmt.Errorf("refusing to remove account %q without --yes", number)
			}
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			if err := v.ldg.Remove(number); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: remove account %s", number)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s removed permanently.\n", number)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the permanent removal")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
