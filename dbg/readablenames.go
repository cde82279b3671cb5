package dbg

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for search artifacts. Refinement runs can spit out dozens of
// same-score variants; numbering them is accurate but impossible to talk
// about, so each variant gets a memoized petname instead. Names are
// nondeterministic between runs on purpose: the same name never refers to the
// same variant across two sessions.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

// Name returns a stable-within-this-run readable name for any comparable key.
func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := petname.Generate(2, "-")
	memo[key] = r
	return r
}

// VariantFile names the JSON file for a score-s variant, e.g.
// "record_25_brave-otter.json".
func VariantFile(score, index int) string {
	return fmt.Sprintf("record_%d_%s.json", score, Name(fmt.Sprintf("variant-%d", index)))
}
