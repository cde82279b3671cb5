package dbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameIsStableWithinARun(t *testing.T) {
	a := Name("variant-1")
	b := Name("variant-2")
	assert.Equal(t, a, Name("variant-1"))
	assert.Equal(t, b, Name("variant-2"))
	assert.NotEmpty(t, a)
}

func TestVariantFile(t *testing.T) {
	f := VariantFile(25, 3)
	assert.True(t, strings.HasPrefix(f, "record_25_"))
	assert.True(t, strings.HasSuffix(f, ".json"))
	assert.Equal(t, f, VariantFile(25, 3), "same variant, same file")
}

func TestNameAcceptsAnyComparableKey(t *testing.T) {
	assert.NotEmpty(t, Name(7))
	assert.NotEmpty(t, Name(fmt.Sprintf("%p", t)))
}
