package configdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetscout/jetscout/internal/catalog"
)

func writeRegistry(t *testing.T, configDir, filename string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "options"), 0o755))
	path := filepath.Join(configDir, "options", filename)
	require.NoError(t, os.WriteFile(path, []byte("<application/>"), 0o644))
	return path
}

func TestRegistryFile_Default(t *testing.T) {
	configDir := t.TempDir()
	want := writeRegistry(t, configDir, "recentProjects.xml")

	goland := catalog.Product{Key: "goland", ConfigGlob: "GoLand*", VendorDir: "JetBrains"}
	path, ok, err := RegistryFile(goland, configDir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, path)
}

func TestRegistryFile_RiderException(t *testing.T) {
	// Rider records solutions; its registry has a different filename.
	configDir := t.TempDir()
	want := writeRegistry(t, configDir, "recentSolutions.xml")

	rider := catalog.Product{Key: "rider", ConfigGlob: "Rider*", VendorDir: "JetBrains"}
	path, ok, err := RegistryFile(rider, configDir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, path)
}

func TestRegistryFile_RiderIgnoresDefaultFilename(t *testing.T) {
	configDir := t.TempDir()
	writeRegistry(t, configDir, "recentProjects.xml")

	rider := catalog.Product{Key: "rider", ConfigGlob: "Rider*", VendorDir: "JetBrains"}
	_, ok, err := RegistryFile(rider, configDir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistryFile_MissingYieldsNone(t *testing.T) {
	goland := catalog.Product{Key: "goland", ConfigGlob: "GoLand*", VendorDir: "JetBrains"}
	_, ok, err := RegistryFile(goland, t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistryFile_DirectoryIsNotARegistry(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "options", "recentProjects.xml"), 0o755))

	goland := catalog.Product{Key: "goland", ConfigGlob: "GoLand*", VendorDir: "JetBrains"}
	_, ok, err := RegistryFile(goland, configDir)
	require.NoError(t, err)
	assert.False(t, ok)
}
