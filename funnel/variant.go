package funnel

import "math/rand"

/* Variant is one A/B page variant of a funnel with its traffic weight
 * Weights are relative, not percentages
 */
type Variant struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

/* Select picks a variant for an incoming visitor
 * A requested key (e.g. forced via ?v=a) wins when it exists; otherwise the
 * pick is weighted random; zero total weight falls back to the first variant
 */
func Select(variants []Variant, requested string) (Variant, bool) {
	if len(variants) == 0 {
		return Variant{}, false
	}

	if requested != "" {
		for _, v := range variants {
			if v.Key == requested {
				return v, true
			}
		}
	}

	total := 0
	for _, v := range variants {
		total += v.Weight
	}
	if total == 0 {
		return variants[0], true
	}

	return pick(variants, rand.Float64()*float64(total)), true
}

// pick walks the cumulative weights; factored out so tests can drive the roll
func pick(variants []Variant, roll float64) Variant {
	cumulative := 0.0
	for _, v := range variants {
		cumulative += float64(v.Weight)
		if roll <= cumulative {
			return v
		}
	}
	return variants[0]
}
