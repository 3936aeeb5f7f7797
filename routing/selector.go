package routing

import "sort"

/* Select picks the first active rule whose condition matches the lead data
 * Rules are evaluated strictly in ascending priority order; equal priorities
 * are broken by rule id so selection never depends on storage order
 * Returns false when no active rule matches (the caller records that as a
 * routing failure, never as something to retry)
 */
func Select(rules []Rule, data map[string]any) (Rule, bool) {
	candidates := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			candidates = append(candidates, r)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, r := range candidates {
		if r.Condition.Evaluate(data) {
			return r, true
		}
	}

	return Rule{}, false
}
