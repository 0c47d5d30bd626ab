package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Vault.Path = "books/vault.json"
	cfg.Defaults.InterestRate = "0.025"
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), Filename)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Vault.Path, got.Vault.Path)
	assert.Equal(t, cfg.Defaults.InterestRate, got.Defaults.InterestRate)
	assert.Equal(t, cfg.Defaults.OverdraftLimit, got.Defaults.OverdraftLimit)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "vault.json", cfg.Vault.Path)
	assert.Equal(t, "0.01", cfg.Defaults.InterestRate)
	assert.Equal(t, "500.00", cfg.Defaults.OverdraftLimit)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
