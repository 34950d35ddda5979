package query

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Intent
	}{
		{
			name:     "compare rainfall",
			question: "Compare rainfall in Tamil Nadu and Kerala",
			want:     IntentCompareRainfall,
		},
		{
			name:     "compare rainfall wins over and keyword",
			question: "compare rainfall between punjab and haryana",
			want:     IntentCompareRainfall,
		},
		{
			name:     "top crops",
			question: "Top 3 crops in Punjab",
			want:     IntentTopCrops,
		},
		{
			name:     "trend keyword",
			question: "Trend of rice in Maharashtra",
			want:     IntentCropTrend,
		},
		{
			name:     "production keyword",
			question: "rice production in maharashtra",
			want:     IntentCropTrend,
		},
		{
			name:     "recommend keyword",
			question: "Recommend paddy vs millet in Rajasthan",
			want:     IntentPolicyRecommendation,
		},
		{
			name:     "vs keyword alone",
			question: "paddy vs millet",
			want:     IntentPolicyRecommendation,
		},
		{
			name:     "and keyword routes to policy before rainfall-in-year",
			question: "rainfall for punjab and 2004",
			want:     IntentPolicyRecommendation,
		},
		{
			name:     "rainfall with year",
			question: "Rainfall in Tamil Nadu in 2004",
			want:     IntentRainfallInYear,
		},
		{
			name:     "rainfall with 19xx year",
			question: "rainfall in kerala in 1975",
			want:     IntentRainfallInYear,
		},
		{
			name:     "rainfall without year is unknown",
			question: "rainfall in kerala",
			want:     IntentUnknown,
		},
		{
			name:     "gibberish",
			question: "asdkjasd",
			want:     IntentUnknown,
		},
		{
			name:     "empty",
			question: "",
			want:     IntentUnknown,
		},
		{
			name:     "case insensitive",
			question: "COMPARE RAINFALL IN KERALA AND GOA",
			want:     IntentCompareRainfall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.question); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.question, got, tt.want)
			}
		})
	}
}

func TestExtractCount(t *testing.T) {
	tests := []struct {
		question string
		fallback int
		want     int
	}{
		{"top 3 crops in punjab", 5, 3},
		{"top crops in punjab", 5, 5},
		{"top 10 crops", 5, 10},
		{"top -3 crops", 5, 5}, // only all-digit tokens count
		{"", 5, 5},
	}

	for _, tt := range tests {
		if got := extractCount(tt.question, tt.fallback); got != tt.want {
			t.Errorf("extractCount(%q, %d) = %d, want %d", tt.question, tt.fallback, got, tt.want)
		}
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		question string
		want     int
		ok       bool
	}{
		{"rainfall in tamil nadu in 2004", 2004, true},
		{"rainfall in 1975", 1975, true},
		{"rainfall in 2004 and 2005", 2004, true}, // first year wins
		{"rainfall last year", 0, false},
		{"rainfall in 1875", 0, false}, // only 19xx/20xx
	}

	for _, tt := range tests {
		got, ok := extractYear(tt.question)
		if got != tt.want || ok != tt.ok {
			t.Errorf("extractYear(%q) = (%d, %v), want (%d, %v)", tt.question, got, ok, tt.want, tt.ok)
		}
	}
}
