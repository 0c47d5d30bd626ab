package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coffre-dev/coffre/internal/config"
	"github.com/coffre-dev/coffre/internal/gitops"
	"github.com/coffre-dev/coffre/internal/ledger"
	"github.com/coffre-dev/coffre/internal/snapshot"
)

// secretEnv is where non-interactive commands pick up the account secret.
// Prompting for passwords is a front-end concern, not the CLI core's.
const secretEnv = "COFFRE_SECRET"

// vault bundles what every subcommand needs: the loaded config, the ledger
// rebuilt from the snapshot, and the directory both live in.
type vault struct {
	dir string
	cfg *config.Config
	ldg *ledger.Ledger
}

func openVault(dir string) (*vault, error) {
	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	if err != nil {
		return nil, err
	}
	ldg, err := snapshot.Load(filepath.Join(dir, cfg.Vault.Path))
	if err != nil {
		return nil, err
	}
	return &vault{dir: dir, cfg: cfg, ldg: ldg}, nil
}

// save persists the ledger and, when configured, commits the revision.
func (v *vault) save(message string) error {
	if err := snapshot.Save(filepath.Join(v.dir, v.cfg.Vault.Path), v.ldg); err != nil {
		return err
	}
	if v.cfg.Git.AutoCommit && gitops.IsRepo(v.dir) {
		author := gitops.Author{Name: v.cfg.Git.AuthorName, Email: v.cfg.Git.AuthorEmail}
		if _, err := gitops.Commit(v.dir, message, author); err != nil {
			return fmt.Errorf("committing vault: %w", err)
		}
	}
	return nil
}

// find wraps Find with the not-found error the flat lookup swallows.
func (v *vault) find(number string) (ledger.Account, error) {
	a, ok := v.ldg.Find(number)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ledger.ErrAccountNotFound, number)
	}
	return a, nil
}

func secretFromEnv() (string, error) {
	secret := os.Getenv(secretEnv)
	if secret == "" {
		return "", fmt.Errorf("%s must be set", secretEnv)
	}
	return secret, nil
}
