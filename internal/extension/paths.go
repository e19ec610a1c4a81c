package extension

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/samber/oops"
)

// Location is the resolved extension directory. It is computed once at
// startup and never changes afterwards.
type Location struct {
	dir string
}

// Dir returns the extension directory.
func (l Location) Dir() string {
	return l.dir
}

// Artifact returns the path of the named file inside the extension directory.
func (l Location) Artifact(name string) string {
	return filepath.Join(l.dir, name)
}

// ExpectedDir returns where the extension must live for the given home directory.
func ExpectedDir(home string) string {
	return filepath.Join(home, DesktopDir, ProgramFolder, ExtensionFolder)
}

// ResolveLocation checks that the extension directory exists under home.
func ResolveLocation(home string) (Location, error) {
	dir := ExpectedDir(home)
	st, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Location{}, &Error{Kind: KindStartupDirectoryMissing, Path: dir, Err: err}
		}
		return Location{}, &Error{Kind: KindStartupDirectoryMissing, Path: dir, Err: oops.Wrapf(err, "failed to access %s", dir)}
	}
	if !st.IsDir() {
		return Location{}, &Error{Kind: KindStartupDirectoryMissing, Path: dir}
	}
	return Location{dir: dir}, nil
}

// DefaultLocation resolves the extension directory for the current user.
func DefaultLocation() (Location, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Location{}, &Error{
			Kind: KindStartupDirectoryMissing,
			Path: ExpectedDir("~"),
			Err:  oops.Wrapf(err, "failed to get home directory"),
		}
	}
	return ResolveLocation(home)
}
