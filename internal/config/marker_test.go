package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tingly-dev/bot-admin/internal/constant"
	"github.com/tingly-dev/bot-admin/internal/typ"
)

func TestReadDBPathTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, constant.MarkerFileName)
	dbPath := filepath.Join(dir, "bot.db")
	require.NoError(t, os.WriteFile(marker, []byte("  "+dbPath+"\n\n"), 0644))

	got, err := ReadDBPath(marker)
	require.NoError(t, err)
	assert.Equal(t, dbPath, got)
}

func TestReadDBPathMissingMarker(t *testing.T) {
	_, err := ReadDBPath(filepath.Join(t.TempDir(), constant.MarkerFileName))
	require.Error(t, err)
	assert.True(t, typ.IsKind(err, typ.KindConfig))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadDBPathEmptyMarker(t *testing.T) {
	marker := filepath.Join(t.TempDir(), constant.MarkerFileName)
	require.NoError(t, os.WriteFile(marker, []byte("\n"), 0644))

	_, err := ReadDBPath(marker)
	require.Error(t, err)
	assert.True(t, typ.IsKind(err, typ.KindConfig))
	assert.True(t, errors.Is(err, ErrEmptyMarker))
}

func TestWriteThenReadDBPath(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "nested", constant.MarkerFileName)
	dbPath := filepath.Join(dir, "data", "bot.db")

	written, err := WriteDBPath(marker, dbPath)
	require.NoError(t, err)
	assert.Equal(t, dbPath, written)

	got, err := ReadDBPath(marker)
	require.NoError(t, err)
	assert.Equal(t, dbPath, got)
}

func TestResolveMarkerPathDefault(t *testing.T) {
	assert.Equal(t, constant.MarkerFileName, ResolveMarkerPath(""))
	assert.Equal(t, "/tmp/custom", ResolveMarkerPath("/tmp/custom"))
}
