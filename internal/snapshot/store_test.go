package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	l := buildLedger(t)
	path := filepath.Join(t.TempDir(), "vault.json")

	require.NoError(t, Save(path, l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "Standard"`)
	assert.Contains(t, string(data), `"credential_hash"`)

	restored, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, l.Len(), restored.Len())

	a, ok := restored.Find("200")
	require.True(t, ok)
	assert.True(t, a.Balance().Equal(dec("1060")), "got %s", a.Balance())
}

func TestLoad_MissingFileIsEmptyLedger(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownTypeFailsWholeFile(t *testing.T) {
	l := buildLedger(t)
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, Save(path, l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	mangled := strings.Replace(string(data), `"type": "Savings"`, `"type": "Premium"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(mangled), 0o644))

	_, err = Load(path)
	require.ErrorIs(t, err, ErrUnknownAccountType)
}
