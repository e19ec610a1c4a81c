package util

import (
	"os"
)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// OverwriteFile replaces the whole content of an existing file.
// Returns an os.ErrNotExist error if the file is not already there; it never
// creates files.
func OverwriteFile(path string, content []byte) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	// Truncate in place so the file keeps its permissions
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFileString reads a whole file as UTF-8 text.
func ReadFileString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
