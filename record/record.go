// Package record reads and writes persisted configurations. The format is a
// small JSON document: line count, integer score, and the lines as (a, b, c)
// triples for ax + by + c = 0. The geometry code assumes well-formed input,
// so all shape validation happens here, at load time.
package record

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"

	"github.com/mfujimura/kobon/arrangement"
)

type Record struct {
	NumLines int         `json:"n_lines"`
	Score    int         `json:"score"`
	Lines    [][]float64 `json:"lines"`
}

// New packs an arrangement and its score into a Record.
func New(ls arrangement.LineSet, score int) *Record {
	lines := make([][]float64, len(ls))
	for i, l := range ls {
		lines[i] = []float64{l.A, l.B, l.C}
	}
	return &Record{NumLines: len(ls), Score: score, Lines: lines}
}

// LineSet converts the record back into an arrangement, validating the shape:
// every line must be exactly three numbers, and n_lines (when present) must
// agree with the list.
func (r *Record) LineSet() (arrangement.LineSet, error) {
	if len(r.Lines) == 0 {
		return nil, errors.New("record contains no lines")
	}
	if r.NumLines != 0 && r.NumLines != len(r.Lines) {
		return nil, errors.Errorf("record claims %d lines but contains %d", r.NumLines, len(r.Lines))
	}
	ls := make(arrangement.LineSet, len(r.Lines))
	for i, triple := range r.Lines {
		if len(triple) != 3 {
			return nil, errors.Errorf("line %d has %d coefficients, want 3", i, len(triple))
		}
		ls[i] = arrangement.Line{A: triple[0], B: triple[1], C: triple[2]}
	}
	return ls, nil
}

// Load reads and validates a configuration file.
func Load(path string) (arrangement.LineSet, int, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "reading %s", path)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, 0, errors.Wrapf(err, "parsing %s", path)
	}
	ls, err := r.LineSet()
	if err != nil {
		return nil, 0, errors.Wrapf(err, "validating %s", path)
	}
	return ls, r.Score, nil
}

// Save writes a configuration file, indented for hand inspection.
func Save(path string, ls arrangement.LineSet, score int) error {
	data, err := json.MarshalIndent(New(ls, score), "", "    ")
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}
	if err := ioutil.WriteFile(path, data, os.FileMode(0644)); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
