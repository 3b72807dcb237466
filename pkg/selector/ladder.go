package selector

import "slices"

// Ladder is the canonical normalized price sequence.
var Ladder = [SetSize]int{10, 20, 30, 40, 50}

// NormalizePrices maps the distinct prices, ascending, onto Ladder by position.
// Only the SetSize smallest prices are mapped; larger ones are absent from the result.
func NormalizePrices(prices []int) map[int]int {
	distinct := slices.Clone(prices)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) > len(Ladder) {
		distinct = distinct[:len(Ladder)]
	}

	mapping := make(map[int]int, len(distinct))
	for i, p := range distinct {
		mapping[p] = Ladder[i]
	}
	return mapping
}
