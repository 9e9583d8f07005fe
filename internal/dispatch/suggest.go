package dispatch

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

const (
	maxSuggestions  = 3
	maxEditDistance = 2
)

// Suggest returns up to limit catalog versions close to the requested one,
// nearest first. Ties keep catalog order.
func Suggest(requested string, catalog Catalog, limit int) []string {
	if requested == "" || limit <= 0 || len(catalog.Versions) == 0 {
		return nil
	}

	type candidate struct {
		version  string
		distance int
	}

	var candidates []candidate
	for _, v := range catalog.Versions {
		d := levenshtein.ComputeDistance(requested, v)
		if d > maxEditDistance {
			continue
		}
		candidates = append(candidates, candidate{version: v, distance: d})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.version)
	}
	return out
}
