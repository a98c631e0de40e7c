package matching

import (
	"context"
	"sort"
)

// Strategy computes the overlap set and a ranking score for two interest
// lists. Score semantics depend on the strategy: Exact counts shared strings,
// Semantic reports mean-embedding cosine similarity on a 0-100 scale.
type Strategy interface {
	Overlap(ctx context.Context, targetInterests, otherInterests []string) (shared []string, score float64, err error)
}

// Exact matches interests by case-sensitive string equality.
type Exact struct{}

func NewExact() Exact {
	return Exact{}
}

func (Exact) Overlap(_ context.Context, targetInterests, otherInterests []string) ([]string, float64, error) {
	other := make(map[string]struct{}, len(otherInterests))
	for _, it := range otherInterests {
		other[it] = struct{}{}
	}

	seen := make(map[string]struct{}, len(targetInterests))
	shared := make([]string, 0)
	for _, it := range targetInterests {
		if _, ok := other[it]; !ok {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		shared = append(shared, it)
	}
	sort.Strings(shared)

	return shared, float64(len(shared)), nil
}
