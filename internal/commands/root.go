// Package commands wires the cobra CLI over the vault core. Commands load
// the snapshot, run one core operation, then save (and optionally commit)
// the result; the core itself never touches the filesystem.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coffre-dev/coffre/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "coffre",
		Short:   "File-backed personal account vault",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("dir", ".", "vault project directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newCreateCommand(),
		newDepositCommand(),
		newWithdrawCommand(),
		newTransferCommand(),
		newInterestCommand(),
		newListCommand(),
		newHistoryCommand(),
		newLoginCommand(),
		newRemoveCommand(),
	)

	return rootCmd
}

func vaultDir(cmd *cobra.Command) string {
	if f := cmd.Flag("dir"); f != nil {
		return f.Value.String()
	}
	return "."
}
