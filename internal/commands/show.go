package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/money"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every account in the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			accounts := v.ldg.Accounts()
			if len(accounts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts registered.")
				return nil
			}
			for _, a := range accounts {
				fmt.Fprintln(cmd.OutOrStdout(), a.Describe())
			}
			return nil
		},
	}
}

func newHistoryCommand() *cobra.Command {
	var number string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show an account's transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			a, err := v.find(number)
			if err != nil {
				return err
			}
			entries := a.History()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions recorded.")
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s | %-40s | %10s | balance %s\n",
					i+1, e.Date.Format("2006-01-02T15:04:05"), e.Operation,
					money.Format(e.Amount), money.Format(e.BalanceAfter))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func newLoginCommand() *cobra.Command {
	var number string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check the account secret (from COFFRE_SECRET)",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			a, err := v.find(number)
			if err != nil {
				return err
			}
			secret, err := secretFromEnv()
			if err != nil {
				return err
			}
			if !a.Verify(secret) {
				return fmt.Errorf("%w: account %q", ledger.ErrAuthenticationFailed, number)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s.\n", a.Owner())
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
