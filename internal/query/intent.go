package query

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is the closed category of question type that determines which
// aggregation routine runs.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentCompareRainfall
	IntentTopCrops
	IntentCropTrend
	IntentPolicyRecommendation
	IntentRainfallInYear
)

func (i Intent) String() string {
	switch i {
	case IntentCompareRainfall:
		return "compare_rainfall"
	case IntentTopCrops:
		return "top_crops"
	case IntentCropTrend:
		return "crop_trend"
	case IntentPolicyRecommendation:
		return "policy_recommendation"
	case IntentRainfallInYear:
		return "rainfall_in_year"
	default:
		return "unknown"
	}
}

// yearPattern matches a 4-digit year token (19xx or 20xx).
var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

type classifierRule struct {
	intent Intent
	match  func(q string) bool
}

// classifierRules is an ordered decision list: the first matching rule wins.
// The keyword sets overlap ("and" shows up in both trend and policy
// phrasing), so the order here is contractual, not cosmetic.
var classifierRules = []classifierRule{
	{IntentCompareRainfall, func(q string) bool {
		return strings.Contains(q, "compare") && strings.Contains(q, "rainfall")
	}},
	{IntentTopCrops, func(q string) bool {
		return strings.Contains(q, "top") && strings.Contains(q, "crop")
	}},
	{IntentCropTrend, func(q string) bool {
		return strings.Contains(q, "trend") || strings.Contains(q, "production")
	}},
	{IntentPolicyRecommendation, containsAny("recommend", "better", "policy", "vs", "versus", "and")},
	{IntentRainfallInYear, func(q string) bool {
		return strings.Contains(q, "rainfall") && yearPattern.MatchString(q)
	}},
}

// Classify inspects keyword signals in the question and picks an intent.
// All tests are case-insensitive substring containment on the trimmed
// question. Classification never fails; no rule matching yields
// IntentUnknown.
func Classify(question string) Intent {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range classifierRules {
		if rule.match(q) {
			return rule.intent
		}
	}
	return IntentUnknown
}

func containsAny(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
}

// extractYear returns the first 4-digit year token in the question.
func extractYear(q string) (int, bool) {
	tok := yearPattern.FindString(q)
	if tok == "" {
		return 0, false
	}
	year, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return year, true
}

// extractCount returns the first whitespace-delimited all-digit token in the
// question, or fallback when none is found.
func extractCount(q string, fallback int) int {
	for _, tok := range strings.Fields(q) {
		if n, err := strconv.Atoi(tok); err == nil && isDigits(tok) {
			return n
		}
	}
	return fallback
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
