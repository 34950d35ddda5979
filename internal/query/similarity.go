package query

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity scores how close a vocabulary candidate is to a piece of query
// text, on a 0-1 scale where 1.0 is exact equality. The resolver accepts the
// best candidate only when its score reaches MatchCutoff.
type Similarity func(candidate, text string) float64

// MatchCutoff is the minimum similarity for a fuzzy match. The boundary is
// inclusive: a score of exactly 0.6 matches.
const MatchCutoff = 0.6

// DifflibRatio is the default Similarity: the SequenceMatcher ratio
// 2*M/T over the two character sequences, where M is the number of matched
// characters and T the combined length.
func DifflibRatio(candidate, text string) float64 {
	m := difflib.NewMatcher(strings.Split(candidate, ""), strings.Split(text, ""))
	return m.Ratio()
}
