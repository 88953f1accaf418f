package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swaperr "bridgeswap/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, "standard", s.GasPrice)
	assert.Equal(t, 0.5, s.SlippageTolerance)
	assert.True(t, s.Notifications.SwapComplete)
	assert.False(t, s.Notifications.Marketing)
}

func TestValidateRejectsBadValues(t *testing.T) {
	s := Default()
	s.Theme = "solarized"
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindImportFormat))

	s = Default()
	s.GasPrice = "ludicrous"
	assert.Error(t, s.Validate())

	s = Default()
	s.SlippageTolerance = -1
	assert.Error(t, s.Validate())
}

func TestMergeAppliesKnownKeys(t *testing.T) {
	base := Default()
	got, err := Merge(base, []byte(`{
		"theme": "light",
		"slippageTolerance": 1.5,
		"notifications": {"marketing": true}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, 1.5, got.SlippageTolerance)
	assert.True(t, got.Notifications.Marketing)

	// keys missing from the file keep their base values
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "standard", got.GasPrice)
	assert.True(t, got.Notifications.SwapComplete)
}

func TestMergeIgnoresUnknownKeys(t *testing.T) {
	got, err := Merge(Default(), []byte(`{"theme": "light", "favoriteColor": "teal"}`))
	require.NoError(t, err)
	assert.Equal(t, "light", got.Theme)
}

func TestMergeRejectsMalformedJSON(t *testing.T) {
	base := Default()
	base.Theme = "light"

	got, err := Merge(base, []byte(`{"theme": `))
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindImportFormat))
	// base comes back untouched
	assert.Equal(t, base, got)
}

func TestMergeRejectsInvalidValues(t *testing.T) {
	base := Default()
	got, err := Merge(base, []byte(`{"theme": "solarized"}`))
	require.Error(t, err)
	assert.Equal(t, base, got)
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultExportFile)

	s := Default()
	s.Theme = "light"
	s.ExpertMode = true
	s.SlippageTolerance = 2.0

	require.NoError(t, Export(s, path))

	got, err := Import(Default(), path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestExportLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, Export(Default(), path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(Default(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindNotFound))
}

func TestImportMalformedFileKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	base := Default()
	got, err := Import(base, path)
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindImportFormat))
	assert.Equal(t, base, got)
}
