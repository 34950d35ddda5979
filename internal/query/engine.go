// Package query implements the natural-language question engine: intent
// classification, fuzzy entity resolution against the dataset vocabularies,
// and the aggregation routines the intents dispatch to.
package query

import (
	"strings"

	"github.com/agrovista/agriquery/internal/dataset"
)

const (
	defaultCompareYears = 5
	defaultPolicyYears  = 10
	defaultTopN         = 5
)

// HelpMessage is returned verbatim for questions no rule understands.
const HelpMessage = `Unable to understand the question. Try examples like:
 - Compare rainfall in Tamil Nadu and Kerala
 - Top 3 crops in Punjab
 - Trend of rice in Maharashtra
 - Recommend paddy vs millet in Rajasthan
 - Rainfall in Tamil Nadu in 2004`

// Engine answers free-text questions about a loaded dataset. It holds only
// read-only state (the table and its vocabulary index), so a single Engine
// serves an entire session.
type Engine struct {
	table *dataset.Table
	vocab *Vocabulary
	sim   Similarity
}

// NewEngine builds an engine over the table using the default difflib-ratio
// similarity.
func NewEngine(t *dataset.Table) *Engine {
	return NewEngineWithSimilarity(t, DifflibRatio)
}

// NewEngineWithSimilarity builds an engine with a custom similarity
// function, which also sets the scoring behind the 0.6 match cutoff.
func NewEngineWithSimilarity(t *dataset.Table, sim Similarity) *Engine {
	return &Engine{
		table: t,
		vocab: BuildVocabulary(t),
		sim:   sim,
	}
}

// ProcessQuestion classifies the question, resolves entities, runs the
// matching aggregation routine and returns the formatted answer. It never
// returns an error: unknown intents get the help message and missing
// entities get a routine-specific clarification prompt.
func (e *Engine) ProcessQuestion(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))

	state := ResolveState(q, e.vocab, e.sim)
	crops := ResolveCrops(q, e.vocab, e.sim)

	switch Classify(q) {
	case IntentCompareRainfall:
		// States are re-derived here by literal substring containment, not
		// fuzzy matching, so two states can be found even when the fuzzy
		// whole-question resolver gives up.
		states := e.statesInQuestion(q)
		if len(states) < 2 {
			return "Please mention two states to compare rainfall."
		}
		return CompareRainfall(e.table, states[0], states[1], defaultCompareYears)

	case IntentTopCrops:
		if state == "" {
			return "Please mention a valid state."
		}
		return TopCrops(e.table, state, extractCount(q, defaultTopN))

	case IntentCropTrend:
		if state == "" || len(crops) == 0 {
			return "Please mention both state and crop."
		}
		return CropTrend(e.table, state, crops[0])

	case IntentPolicyRecommendation:
		if state == "" || len(crops) < 2 {
			return "Please mention two crops and one state."
		}
		return PolicyRecommendation(e.table, crops[0], crops[1], state, defaultPolicyYears)

	case IntentRainfallInYear:
		if state == "" {
			return "Please mention a valid state."
		}
		year, _ := extractYear(q)
		return RainfallInYear(e.table, state, year)
	}

	return HelpMessage
}

// statesInQuestion returns the canonical state names literally contained in
// the lower-cased question, in order of first appearance in the table.
func (e *Engine) statesInQuestion(q string) []string {
	var found []string
	for _, s := range e.table.DistinctStates() {
		if strings.Contains(q, strings.ToLower(s)) {
			found = append(found, s)
		}
	}
	return found
}
