package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/money"
)

func newDepositCommand() *cobra.Command {
	var number, amountStr string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit an amount into an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			amount, err := money.Parse(amountStr)
			if err != nil {
				return err
			}
			a, err := v.find(number)
			if err != nil {
				return err
			}
			if err := a.Deposit(amount); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: deposit %s to %s", amount.StringFixed(2), number)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deposit recorded. New balance: %s\n", money.Format(a.Balance()))
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to deposit (required)")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWithdrawCommand() *cobra.Command {
	var number, amountStr string

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw an amount from an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			amount, err := money.Parse(amountStr)
			if err != nil {
				return err
			}
			a, err := v.find(number)
			if err != nil {
				return err
			}
			if err := a.Withdraw(amount); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: withdraw %s from %s", amount.StringFixed(2), number)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal recorded. New balance: %s\n", money.Format(a.Balance()))
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to withdraw (required)")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransferCommand() *cobra.Command {
	var from, to, amountStr string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer an amount between two accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			amount, err := money.Parse(amountStr)
			if err != nil {
				return err
			}
			if err := v.ldg.Transfer(amount, from, to); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: transfer %s from %s to %s", amount.StringFixed(2), from, to)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s from %s to %s\n", money.Format(amount), from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account number (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination account number (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount to transfer (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newInterestCommand() *cobra.Command {
	var number string

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Apply interest to a savings account",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}
			a, err := v.find(number)
			if err != nil {
				return err
			}
			sav, ok := a.(*ledger.Savings)
			if !ok {
				return fmt.Errorf("account %q is not a savings account", number)
			}
			if err := sav.ApplyInterest(); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: apply interest on %s", number)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Interest applied. New balance: %s\n", money.Format(sav.Balance()))
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "savings account number (required)")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
