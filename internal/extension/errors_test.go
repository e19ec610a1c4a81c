package extension

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfThroughWrapping(t *testing.T) {
	base := &Error{Kind: KindArtifactMissing, Path: "/ext/manifest.json"}
	wrapped := fmt.Errorf("save failed: %w", base)

	assert.Equal(t, KindArtifactMissing, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindArtifactMissing))
	assert.False(t, IsKind(wrapped, KindIOFailure))
	assert.Equal(t, KindNone, KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindNone))
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      *Error
		expected string
	}{
		{&Error{Kind: KindStartupDirectoryMissing, Path: "/home/a/Desktop"}, "extension directory not found: /home/a/Desktop"},
		{&Error{Kind: KindInvalidIPFormat, Path: "1.2.3"}, `invalid IPv4 address "1.2.3"`},
		{&Error{Kind: KindArtifactMissing, Path: "/ext/config.module.js"}, "file not found: /ext/config.module.js"},
		{&Error{Kind: KindIOFailure, Path: "/ext/manifest.json", Err: errors.New("disk full")}, "disk full"},
		{&Error{Kind: KindIOFailure, Path: "/ext/manifest.json"}, "i/o failure: /ext/manifest.json"},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Kind: KindStartupDirectoryMissing, Path: "/x", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
}
