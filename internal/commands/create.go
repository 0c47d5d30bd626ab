package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/money"
)

func newCreateCommand() *cobra.Command {
	var owner, number, kind, balanceStr, rateStr, limitStr string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account (secret taken from COFFRE_SECRET)",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVault(vaultDir(cmd))
			if err != nil {
				return err
			}

			secret, err := secretFromEnv()
			if err != nil {
				return err
			}
			balance, err := money.Parse(balanceStr)
			if err != nil {
				return fmt.Errorf("balance: %w", err)
			}

			var acct ledger.Account
			switch kind {
			case "standard":
				acct, err = ledger.NewStandard(owner, number, secret, balance)
			case "savings":
				rate, rerr := parseRate(rateStr, v.cfg.Defaults.InterestRate)
				if rerr != nil {
					return rerr
				}
				acct, err = ledger.NewSavings(owner, number, secret, balance, rate)
			case "business":
				limit, lerr := parseLimit(limitStr, v.cfg.Defaults.OverdraftLimit)
				if lerr != nil {
					return lerr
				}
				acct, err = ledger.NewBusiness(owner, number, secret, balance, limit)
			default:
				return fmt.Errorf("unknown account type %q (want standard, savings or business)", kind)
			}
			if err != nil {
				return err
			}

			if err := v.ldg.Register(acct); err != nil {
				return err
			}
			if err := v.save(fmt.Sprintf("vault: create %s account %s", kind, acct.Number())); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), acct.Describe())
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "account owner (required)")
	cmd.Flags().StringVar(&number, "number", "", "account number (required)")
	cmd.Flags().StringVar(&kind, "type", "standard", "account type: standard, savings or business")
	cmd.Flags().StringVar(&balanceStr, "balance", "0", "initial balance")
	cmd.Flags().StringVar(&rateStr, "rate", "", "interest rate for savings accounts (0..1)")
	cmd.Flags().StringVar(&limitStr, "limit", "", "overdraft limit for business accounts")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func parseRate(flag, fallback string) (decimal.Decimal, error) {
	s := flag
	if s == "" {
		s = fallback
	}
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("interest rate: %q is not a number", s)
	}
	return rate, nil
}

func parseLimit(flag, fallback string) (decimal.Decimal, error) {
	s := flag
	if s == "" {
		s = fallback
	}
	limit, err := money.Parse(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("overdraft limit: %w", err)
	}
	return limit, nil
}
