package extension

import (
	"errors"
	"fmt"
)

// Kind classifies the ways configuring the extension can fail.
type Kind string

const (
	KindNone                    Kind = ""
	KindStartupDirectoryMissing Kind = "startup_directory_missing"
	KindInvalidIPFormat         Kind = "invalid_ip_format"
	KindArtifactMissing         Kind = "artifact_missing"
	KindIOFailure               Kind = "io_failure"
)

// Error is the tagged error returned by every operation in this package.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStartupDirectoryMissing:
		return fmt.Sprintf("extension directory not found: %s", e.Path)
	case KindInvalidIPFormat:
		return fmt.Sprintf("invalid IPv4 address %q", e.Path)
	case KindArtifactMissing:
		return fmt.Sprintf("file not found: %s", e.Path)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("i/o failure: %s", e.Path)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or KindNone if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
