package query

import (
	"regexp"
	"strings"

	"github.com/agrovista/agriquery/internal/dataset"
)

// cropSeparator splits a question into crop-candidate fragments on the
// whole words "vs", "versus" and "and".
var cropSeparator = regexp.MustCompile(`(?i)\b(?:vs|versus|and)\b`)

// ResolveState fuzzy-matches the question against every known state and
// returns the canonical (title-cased) best match, or "" when nothing reaches
// the cutoff.
//
// The whole lower-cased question is matched, not individual tokens, so a
// state name embedded in a long sentence can fail to resolve even though it
// is plainly there. Callers must tolerate these false negatives; the
// compare-rainfall path separately re-derives states by literal substring
// containment for exactly this reason.
func ResolveState(question string, vocab *Vocabulary, sim Similarity) string {
	match, ok := bestMatch(strings.TrimSpace(strings.ToLower(question)), vocab.States, sim)
	if !ok {
		return ""
	}
	return dataset.TitleCase(match)
}

// ResolveCrops splits the question on "vs"/"versus"/"and" and fuzzy-matches
// each fragment independently against the known crops. Canonical
// (title-cased) matches are returned in fragment order; duplicates are kept.
func ResolveCrops(question string, vocab *Vocabulary, sim Similarity) []string {
	var crops []string
	for _, part := range cropSeparator.Split(strings.ToLower(question), -1) {
		match, ok := bestMatch(strings.TrimSpace(part), vocab.Crops, sim)
		if !ok {
			continue
		}
		crops = append(crops, dataset.TitleCase(match))
	}
	return crops
}

// bestMatch returns the candidate with the highest similarity to text,
// provided the score reaches MatchCutoff. When several candidates tie for
// best, which one wins depends on map iteration order; the behavior is
// nondeterministic by construction and callers get exactly one of the tied
// candidates.
func bestMatch(text string, candidates map[string]struct{}, sim Similarity) (string, bool) {
	var best string
	bestScore := -1.0
	for candidate := range candidates {
		score := sim(candidate, text)
		if score >= MatchCutoff && score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, bestScore >= MatchCutoff
}
