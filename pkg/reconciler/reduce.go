package reconciler

import (
	"sort"

	"github.com/ben10dynartio/countryinfo/pkg/wikidata"
)

// Continent labels normalized to a single canonical value. Wikidata tags
// Oceania-region countries with either of two variant continent entities.
const canonicalOceania = "Oceania"

var oceaniaVariants = map[string]bool{
	"Insular Oceania":      true,
	"Australian continent": true,
}

// locatorMapScores ranks locator map candidates by projection type; lower is
// preferred. Unmatched values receive defaultLocatorScore and lose to any
// recognized projection.
var locatorMapScores = map[string]int{
	"orthographic projection": 1,
	"orthographic":            2,
	"on the globe":            3,
}

const defaultLocatorScore = 99

// locatorScore returns the preference score for a locator map candidate.
func locatorScore(value string) int {
	if score, ok := locatorMapScores[value]; ok {
		return score
	}
	return defaultLocatorScore
}

// firstPerCode keeps the first value per country code in source order,
// skipping rows with an empty code. This is the default reduction for any
// list property without a dedicated rule.
func firstPerCode(rows []wikidata.Binding, variable string) map[string]string {
	out := make(map[string]string)
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		if _, seen := out[code]; seen {
			continue
		}
		out[code] = row.Get(variable)
	}
	return out
}

// reduceContinent normalizes the two Oceania variant labels to the canonical
// one, then keeps the first continent per code.
func reduceContinent(rows []wikidata.Binding, variable string) map[string]string {
	out := make(map[string]string)
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		if _, seen := out[code]; seen {
			continue
		}
		label := row.Get(variable)
		if oceaniaVariants[label] {
			label = canonicalOceania
		}
		out[code] = label
	}
	return out
}

// reduceLanguages concatenates the multi-row values per code into a single
// comma-separated string. Ordering follows the result order, not sorted.
func reduceLanguages(rows []wikidata.Binding, variable string) map[string]string {
	out := make(map[string]string)
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		value := row.Get(variable)
		if existing, seen := out[code]; seen {
			out[code] = existing + ", " + value
		} else {
			out[code] = value
		}
	}
	return out
}

// reduceLocatorMap strips the Commons prefix from each candidate image,
// percent-decodes it, ranks it by projection score, and keeps the
// best-scoring (lowest) candidate per code. Ties keep the earlier row.
func reduceLocatorMap(rows []wikidata.Binding, variable string) map[string]string {
	type candidate struct {
		code  string
		value string
		score int
	}

	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		value := wikidata.CleanCommonsFile(row.Get(variable))
		candidates = append(candidates, candidate{code: code, value: value, score: locatorScore(value)})
	}

	// Stable sort keeps source order within equal scores.
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

	out := make(map[string]string)
	for _, c := range candidates {
		if _, seen := out[c.code]; seen {
			continue
		}
		out[c.code] = c.value
	}
	return out
}

// reduceDated keeps the most recent statement per code: rows are stably
// sorted by the date string descending, then the first row per code wins.
// Missing dates are compared as empty strings, matching the fetched data
// as-is; an empty date therefore only wins when no dated statement exists.
func reduceDated(rows []wikidata.Binding, valueVar, dateVar string) map[string]string {
	sorted := make([]wikidata.Binding, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Get(dateVar) > sorted[j].Get(dateVar)
	})

	out := make(map[string]string)
	for _, row := range sorted {
		code := row.Get(wikidata.CodePropertyName)
		if code == "" {
			continue
		}
		if _, seen := out[code]; seen {
			continue
		}
		out[code] = row.Get(valueVar)
	}
	return out
}
