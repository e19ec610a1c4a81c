package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "1.2.0", OrDash("1.2.0"))
}

func TestJoinOrDash(t *testing.T) {
	assert.Equal(t, "-", JoinOrDash())
	assert.Equal(t, "a, b", JoinOrDash("a", "b"))
}
