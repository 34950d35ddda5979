package query

import (
	"strings"

	"github.com/agrovista/agriquery/internal/dataset"
)

// Vocabulary holds the known state and crop names of a dataset, lower-cased,
// for fuzzy entity resolution. It is built once per table and never changes
// afterwards; rebuild it if the table is replaced.
type Vocabulary struct {
	States map[string]struct{}
	Crops  map[string]struct{}
}

// BuildVocabulary projects the distinct non-missing state and crop names of
// the table into lower-cased sets. An empty table yields empty sets.
func BuildVocabulary(t *dataset.Table) *Vocabulary {
	v := &Vocabulary{
		States: make(map[string]struct{}),
		Crops:  make(map[string]struct{}),
	}
	for _, s := range t.DistinctStates() {
		v.States[strings.ToLower(s)] = struct{}{}
	}
	for _, c := range t.DistinctCrops() {
		v.Crops[strings.ToLower(c)] = struct{}{}
	}
	return v
}
