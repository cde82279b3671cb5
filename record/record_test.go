package record

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfujimura/kobon/arrangement"
)

func TestRoundTrip(t *testing.T) {
	ls := arrangement.LineSet{{A: 1, B: 0, C: -1}, {A: 0, B: 1, C: -1}, {A: 1, B: 1, C: -3}}
	path := filepath.Join(t.TempDir(), "record.json")

	require.NoError(t, Save(path, ls, 1))
	got, score, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	require.Len(t, got, 3)
	for i := range ls {
		assert.InDelta(t, ls[i].A, got[i].A, 1e-15)
		assert.InDelta(t, ls[i].B, got[i].B, 1e-15)
		assert.InDelta(t, ls[i].C, got[i].C, 1e-15)
	}
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
		return path
	}

	cases := []struct {
		name string
		body string
	}{
		{"not json", "lines: everywhere"},
		{"non-numeric coefficients", `{"n_lines": 1, "score": 0, "lines": [["a", "b", "c"]]}`},
		{"short triple", `{"n_lines": 1, "score": 0, "lines": [[1.0, 2.0]]}`},
		{"long triple", `{"n_lines": 1, "score": 0, "lines": [[1.0, 2.0, 3.0, 4.0]]}`},
		{"count mismatch", `{"n_lines": 5, "score": 0, "lines": [[1.0, 2.0, 3.0]]}`},
		{"no lines", `{"n_lines": 0, "score": 0, "lines": []}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Load(write("bad.json", c.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "does-not-exist.json"))
		assert.Error(t, err)
	})
}

func TestLoadToleratesAbsentCount(t *testing.T) {
	// Some older artifacts omit n_lines; the line list is authoritative.
	path := filepath.Join(t.TempDir(), "old.json")
	body := `{"score": 1, "lines": [[1, 0, -1], [0, 1, -1], [1, 1, -3]]}`
	require.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))

	ls, score, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, score)
	assert.Len(t, ls, 3)
}
