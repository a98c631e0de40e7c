package usecase

import (
	"context"
	"errors"
	"testing"

	"interest-match/internal/domain/matching"
	"interest-match/internal/domain/user"
	"interest-match/internal/infrastructure/store"
)

type mockStore struct {
	records []user.User
	loadErr error
	saveErr error
	saved   [][]user.User
}

func (m *mockStore) LoadAll(context.Context) ([]user.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.records, nil
}

func (m *mockStore) SaveAll(_ context.Context, records []user.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, records)
	return nil
}

func TestMatchingUsecase_TopMatches_Success(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{records: []user.User{
		{ID: "user_001", FullName: "Target", Interests: []string{"chess", "hiking"}},
		{ID: "user_002", FullName: "A", Interests: []string{"chess"}},
		{ID: "user_003", FullName: "B", Interests: []string{"chess", "hiking"}},
	}}, matching.NewExact(), 3)

	matches, err := uc.TopMatches(context.Background(), "user_001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].UserID != "user_003" {
		t.Fatalf("expected user_003 first, got %s", matches[0].UserID)
	}
}

func TestMatchingUsecase_TopMatches_UnknownUser(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{records: []user.User{
		{ID: "user_002", FullName: "A", Interests: []string{"chess"}},
	}}, matching.NewExact(), 3)

	_, err := uc.TopMatches(context.Background(), "user_001")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMatchingUsecase_TopMatches_EmptyTargetID(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{}, matching.NewExact(), 3)

	_, err := uc.TopMatches(context.Background(), "   ")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMatchingUsecase_TopMatches_NoInterests(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{records: []user.User{
		{ID: "user_001", FullName: "Target"},
	}}, matching.NewExact(), 3)

	_, err := uc.TopMatches(context.Background(), "user_001")
	if !errors.Is(err, ErrEmptyInterests) {
		t.Fatalf("expected ErrEmptyInterests, got %v", err)
	}
}

func TestMatchingUsecase_TopMatches_StoreUnavailable(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{loadErr: store.ErrUnavailable}, matching.NewExact(), 3)

	_, err := uc.TopMatches(context.Background(), "user_001")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestMatchingUsecase_TopMatches_MalformedStore(t *testing.T) {
	uc := NewMatchingUsecase(&mockStore{loadErr: store.ErrMalformed}, matching.NewExact(), 3)

	_, err := uc.TopMatches(context.Background(), "user_001")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
