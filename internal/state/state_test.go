package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultState(), s)
	assert.Equal(t, 0, s.SelectedRow)
}

func TestSaveLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	want := &State{SelectedRow: 3, ShowFullHelp: true, WindowWidth: 120, WindowHeight: 40}
	require.NoError(t, Save(want))

	_, err := os.Stat(filepath.Join(home, "dashboard", "state.yml"))
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadCorruptReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "dashboard")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.yml"), []byte("selected_row: [x"), 0644))

	s, err := Load()
	assert.Error(t, err)
	assert.Equal(t, DefaultState(), s)
}
