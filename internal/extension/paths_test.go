package extension

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedDir(t *testing.T) {
	home := filepath.Join("home", "operator")
	assert.Equal(t,
		filepath.Join(home, "Desktop", "달서프로그램", "X-TICKET_크롬_확장프로그램"),
		ExpectedDir(home))
}

func TestResolveLocation(t *testing.T) {
	home := t.TempDir()
	dir := ExpectedDir(home)
	require.NoError(t, os.MkdirAll(dir, 0755))

	loc, err := ResolveLocation(home)
	require.NoError(t, err)
	assert.Equal(t, dir, loc.Dir())
	assert.Equal(t, filepath.Join(dir, ManifestFile), loc.Artifact(ManifestFile))
}

func TestResolveLocationMissing(t *testing.T) {
	home := t.TempDir()

	_, err := ResolveLocation(home)
	require.Error(t, err)
	assert.Equal(t, KindStartupDirectoryMissing, KindOf(err))
	assert.Contains(t, err.Error(), ExpectedDir(home))
}

func TestResolveLocationNotADirectory(t *testing.T) {
	home := t.TempDir()
	dir := ExpectedDir(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(dir), 0755))
	require.NoError(t, os.WriteFile(dir, []byte("not a folder"), 0644))

	_, err := ResolveLocation(home)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStartupDirectoryMissing))
}

func TestDefaultLocationUsesHome(t *testing.T) {
	// Whatever the machine looks like, a failure must name the expected folder
	_, err := DefaultLocation()
	if err != nil {
		assert.Equal(t, KindStartupDirectoryMissing, KindOf(err))
		assert.Contains(t, err.Error(), ExtensionFolder)
	}
}
