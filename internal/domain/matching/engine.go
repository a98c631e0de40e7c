package matching

import (
	"context"
	"errors"
	"sort"

	"interest-match/internal/domain/user"
)

// DefaultLimit is the number of matches returned when no limit is given.
const DefaultLimit = 3

var (
	ErrTargetNotFound = errors.New("target user not found")
	ErrNoInterests    = errors.New("target user has no interests")
)

// Match is one ranked candidate. Optional profile fields missing on the
// matched record are substituted with "N/A".
type Match struct {
	UserID    string
	Name      string
	Email     string
	JobTitle  string
	Company   string
	Score     float64
	Interests []string
}

const naValue = "N/A"

// FindTopMatches ranks every other record against the target's interests and
// returns at most limit matches, best first. A candidate is included only if
// the strategy finds at least one shared interest. Ties keep input order. An
// empty result is a valid outcome, not an error.
func FindTopMatches(ctx context.Context, targetID string, records []user.User, limit int, strategy Strategy) ([]Match, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var target *user.User
	for i := range records {
		if records[i].ID == targetID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return nil, ErrTargetNotFound
	}
	if len(target.Interests) == 0 {
		return nil, ErrNoInterests
	}

	matches := make([]Match, 0)
	for i := range records {
		other := records[i]
		if other.ID == targetID {
			continue
		}
		if len(other.Interests) == 0 {
			continue
		}

		shared, score, err := strategy.Overlap(ctx, target.Interests, other.Interests)
		if err != nil {
			return nil, err
		}
		if len(shared) == 0 {
			continue
		}

		matches = append(matches, Match{
			UserID:    other.ID,
			Name:      other.FullName,
			Email:     orNA(other.Email),
			JobTitle:  orNA(other.JobTitle),
			Company:   orNA(other.Company),
			Score:     score,
			Interests: shared,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func orNA(s string) string {
	if s == "" {
		return naValue
	}
	return s
}
