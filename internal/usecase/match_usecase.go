package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"interest-match/internal/domain/matching"
	"interest-match/internal/domain/user"
	"interest-match/internal/infrastructure/store"
	"interest-match/internal/metrics"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyInterests   = errors.New("user has no interests")
	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrInternal         = errors.New("internal error")
)

type MatchingUsecase interface {
	TopMatches(ctx context.Context, userID string) ([]matching.Match, error)
}

type Matching struct {
	store    user.Store
	strategy matching.Strategy
	limit    int
}

func NewMatchingUsecase(st user.Store, strategy matching.Strategy, limit int) *Matching {
	if limit <= 0 {
		limit = matching.DefaultLimit
	}
	return &Matching{store: st, strategy: strategy, limit: limit}
}

func (u *Matching) TopMatches(ctx context.Context, userID string) ([]matching.Match, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserNotFound
	}

	records, err := u.store.LoadAll(ctx)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) || errors.Is(err, store.ErrMalformed) {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	start := time.Now()
	matches, err := matching.FindTopMatches(ctx, userID, records, u.limit, u.strategy)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrTargetNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, matching.ErrNoInterests):
			return nil, ErrEmptyInterests
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	metrics.MatchResultsTotal.Add(float64(len(matches)))
	return matches, nil
}
