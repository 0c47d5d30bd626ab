package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/coffre-dev/coffre/internal/ledger"
)

// Save writes the ledger's snapshot to path as indented JSON. The core never
// calls this itself; persistence is an explicit step the caller performs
// after a successful operation.
func Save(path string, l *ledger.Ledger) error {
	data, err := json.MarshalIndent(Marshal(l), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot file and rebuilds the ledger. A missing file yields
// an empty ledger, so a fresh vault needs no bootstrap step.
func Load(path string) (*ledger.Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}

	l, err := Unmarshal(records)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
	}
	return l, nil
}
