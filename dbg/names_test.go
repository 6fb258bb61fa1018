package dbg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameIsMemoized(t *testing.T) {
	Reset()

	first := Name(7)
	require.NotEmpty(t, first)
	assert.True(t, unicode.IsUpper(rune(first[0])))
	assert.Equal(t, first, Name(7))
}

func TestResetForgetsNames(t *testing.T) {
	Reset()
	Name(1)
	Name(2)
	assert.Len(t, memo, 2)

	Reset()
	assert.Empty(t, memo)
}
