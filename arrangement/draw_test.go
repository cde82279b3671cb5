package arrangement

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	ls := LineSet{{1, 0, -1}, {0, 1, -1}, {1, 1, -3}}
	ls.Normalize()
	tris := FindTriangles(ls, nil)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Draw(ls, tris, path, 400))
	assert.FileExists(t, path)
}

func TestDrawHandlesNoIntersections(t *testing.T) {
	// All parallel: the view falls back to a fixed window
	ls := LineSet{{1, 0, -1}, {1, 0, -2}, {1, 0, -3}}
	path := filepath.Join(t.TempDir(), "parallel.png")
	require.NoError(t, Draw(ls, nil, path, 400))
	assert.FileExists(t, path)
}
