package query

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agrovista/agriquery/internal/dataset"
)

// The five aggregation routines below are pure functions over the table and
// already-resolved entities: identical inputs on an unchanged table yield
// identical output strings. All numeric aggregates are rounded to 2 decimal
// places before formatting.
//
// Entity filters use case-insensitive substring containment (except
// CompareRainfall, which receives canonical names and matches exactly). A
// resolved name that is a substring of another valid name therefore
// aggregates across both; that imprecision is part of the contract.

// CompareRainfall reports the mean rainfall per state over the most recent
// `years` distinct years in which either state has data.
func CompareRainfall(t *dataset.Table, state1, state2 string, years int) string {
	var rows []dataset.Record
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if r.State == state1 || r.State == state2 {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return "Data not available for the given states."
	}

	window := latestYears(rows, years)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		if !window[r.Year] {
			continue
		}
		sums[r.State] += r.RainfallMM
		counts[r.State]++
	}

	states := make([]string, 0, len(sums))
	for s := range sums {
		states = append(states, s)
	}
	sort.Strings(states)

	var b strings.Builder
	fmt.Fprintf(&b, "Average rainfall (last %d years):", years)
	for _, s := range states {
		fmt.Fprintf(&b, "\n%s: %.2f mm", s, round2(sums[s]/float64(counts[s])))
	}
	return b.String()
}

// TopCrops reports the n crops with the highest total production in states
// matching the given name.
func TopCrops(t *dataset.Table, state string, n int) string {
	totals := make(map[string]float64)
	var order []string
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if !containsFold(r.State, state) {
			continue
		}
		if _, seen := totals[r.Crop]; !seen {
			order = append(order, r.Crop)
		}
		totals[r.Crop] += r.ProductionTonnes
	}
	if len(order) == 0 {
		return "No data found for this state."
	}

	// Groups start in name order so equal totals keep a stable, reproducible
	// ranking after the sort by production.
	sort.Strings(order)
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d crops in %s:", n, dataset.TitleCase(state))
	for _, crop := range order {
		fmt.Fprintf(&b, "\n%s: %.2f tonnes", crop, round2(totals[crop]))
	}
	return b.String()
}

// CropTrend reports per-year mean production and rainfall for a crop in a
// state, ordered by ascending year.
func CropTrend(t *dataset.Table, state, crop string) string {
	type agg struct {
		production float64
		rainfall   float64
		count      int
	}
	byYear := make(map[int]*agg)
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if !containsFold(r.State, state) || !containsFold(r.Crop, crop) || !r.HasYear() {
			continue
		}
		a := byYear[r.Year]
		if a == nil {
			a = &agg{}
			byYear[r.Year] = a
		}
		a.production += r.ProductionTonnes
		a.rainfall += r.RainfallMM
		a.count++
	}
	if len(byYear) == 0 {
		return "No data found for the specified crop or state."
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var b strings.Builder
	fmt.Fprintf(&b, "Crop trend for %s in %s:", dataset.TitleCase(crop), dataset.TitleCase(state))
	for _, y := range years {
		a := byYear[y]
		n := float64(a.count)
		fmt.Fprintf(&b, "\n%d: production %.2f tonnes, rainfall %.2f mm",
			y, round2(a.production/n), round2(a.rainfall/n))
	}
	return b.String()
}

// PolicyRecommendation compares two crops in a region over the most recent
// `years` distinct years and reports each crop's mean production and
// rainfall.
func PolicyRecommendation(t *dataset.Table, cropA, cropB, region string, years int) string {
	var regionRows []dataset.Record
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if containsFold(r.State, region) {
			regionRows = append(regionRows, r)
		}
	}
	if len(regionRows) == 0 {
		return "Region not found."
	}

	window := latestYears(regionRows, years)
	var a, b []dataset.Record
	for _, r := range regionRows {
		if !window[r.Year] {
			continue
		}
		if containsFold(r.Crop, cropA) {
			a = append(a, r)
		}
		if containsFold(r.Crop, cropB) {
			b = append(b, r)
		}
	}
	if len(a) == 0 || len(b) == 0 {
		return "Not enough data for one or both crops."
	}

	return fmt.Sprintf("Policy Insight for %s:\n"+
		"- %s: Avg production = %.2f tonnes, Avg rainfall = %.2f mm\n"+
		"- %s: Avg production = %.2f tonnes, Avg rainfall = %.2f mm",
		dataset.TitleCase(region),
		dataset.TitleCase(cropA), round2(meanProduction(a)), round2(meanRainfall(a)),
		dataset.TitleCase(cropB), round2(meanProduction(b)), round2(meanRainfall(b)))
}

// RainfallInYear reports the mean rainfall for a state in a specific year.
func RainfallInYear(t *dataset.Table, state string, year int) string {
	var sum float64
	var count int
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if containsFold(r.State, state) && r.Year == year {
			sum += r.RainfallMM
			count++
		}
	}
	if count == 0 {
		return "No data for the specified state and year."
	}
	return fmt.Sprintf("Average rainfall in %s in %d: %.2f mm",
		dataset.TitleCase(state), year, round2(sum/float64(count)))
}

// latestYears returns the `years` most recent distinct valid years present
// in rows, as a set.
func latestYears(rows []dataset.Record, years int) map[int]bool {
	seen := make(map[int]bool)
	var distinct []int
	for _, r := range rows {
		if r.HasYear() && !seen[r.Year] {
			seen[r.Year] = true
			distinct = append(distinct, r.Year)
		}
	}
	sort.Ints(distinct)
	if len(distinct) > years {
		distinct = distinct[len(distinct)-years:]
	}
	window := make(map[int]bool, len(distinct))
	for _, y := range distinct {
		window[y] = true
	}
	return window
}

func meanProduction(rows []dataset.Record) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.ProductionTonnes
	}
	return sum / float64(len(rows))
}

func meanRainfall(rows []dataset.Record) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.RainfallMM
	}
	return sum / float64(len(rows))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
