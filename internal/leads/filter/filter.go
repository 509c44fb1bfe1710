package filter

import (
	"sort"
	"strings"

	"radar/pkg/model"
)

// Apply keeps leads matching every criterion, in load order.
func Apply(leads []model.Lead, criteria model.FilterCriteria) []model.Lead {
	out := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		if Matches(l, criteria) {
			out = append(out, l)
		}
	}
	return out
}

func Matches(l model.Lead, criteria model.FilterCriteria) bool {
	if l.Score < criteria.MinScore {
		return false
	}
	if criteria.City != "" && l.City != criteria.City {
		return false
	}
	if criteria.Neighborhood != "" && l.Neighborhood != criteria.Neighborhood {
		return false
	}
	return true
}

// Cities lists the selectable cities. A blank city cannot be selected, since
// an empty city criterion means "all", so it is left out.
func Cities(leads []model.Lead) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, l := range leads {
		if strings.TrimSpace(l.City) == "" {
			continue
		}
		if _, ok := seen[l.City]; ok {
			continue
		}
		seen[l.City] = struct{}{}
		out = append(out, l.City)
	}
	sort.Strings(out)
	return out
}

// Neighborhoods lists the selectable neighborhoods of city. An empty city
// means "all cities", which offers no neighborhood choice.
func Neighborhoods(leads []model.Lead, city string) []string {
	out := []string{}
	if city == "" {
		return out
	}

	seen := make(map[string]struct{})
	for _, l := range leads {
		if l.City != city || l.Neighborhood == model.NeighborhoodNotInformed {
			continue
		}
		if _, ok := seen[l.Neighborhood]; ok {
			continue
		}
		seen[l.Neighborhood] = struct{}{}
		out = append(out, l.Neighborhood)
	}
	sort.Strings(out)
	return out
}
