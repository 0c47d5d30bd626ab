package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coffre-dev/coffre/internal/config"
	"github.com/coffre-dev/coffre/internal/gitops"
	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new vault",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := vaultDir(cmd)
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, noGit)
		},
	}

	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git initialization")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, noGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.Filename, dir)
	}

	cfg := config.Default()
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	// An empty snapshot so the first operation finds a valid vault file.
	if err := snapshot.Save(filepath.Join(dir, cfg.Vault.Path), ledger.New()); err != nil {
		return err
	}

	if !noGit {
		if err := gitops.Init(dir); err != nil {
			return err
		}
		author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
		hash, err := gitops.Commit(dir, "vault: initialize", author)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized vault at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized vault at %s\n", dir)
	return nil
}
