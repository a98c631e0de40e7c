package usecase

import (
	"context"
	"errors"
	"testing"

	"interest-match/internal/domain/user"
	"interest-match/internal/infrastructure/store"
)

func strPtr(s string) *string { return &s }

func TestUserUsecase_GetUser(t *testing.T) {
	uc := NewUserUsecase(&mockStore{records: []user.User{
		{ID: "user_001", FullName: "Alice"},
		{ID: "user_002", FullName: "Bob"},
	}})

	got, err := uc.GetUser(context.Background(), "user_002")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.FullName != "Bob" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := uc.GetUser(context.Background(), "user_999"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserUsecase_ListUsers_StoreError(t *testing.T) {
	uc := NewUserUsecase(&mockStore{loadErr: store.ErrMalformed})

	_, err := uc.ListUsers(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestUserUsecase_UpdateUser_PartialUpdate(t *testing.T) {
	st := &mockStore{records: []user.User{
		{ID: "user_001", FullName: "Alice", Email: "alice@example.com", Company: "Acme", Interests: []string{"chess"}},
	}}
	uc := NewUserUsecase(st)

	got, err := uc.UpdateUser(context.Background(), "user_001", UpdateUserInput{
		Email: strPtr("new@example.com"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Email != "new@example.com" {
		t.Fatalf("email not updated: %+v", got)
	}
	if got.FullName != "Alice" || got.Company != "Acme" || len(got.Interests) != 1 {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if len(st.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(st.saved))
	}
	if st.saved[0][0].Email != "new@example.com" {
		t.Fatalf("persisted collection not updated: %+v", st.saved[0][0])
	}
}

func TestUserUsecase_UpdateUser_ReplacesInterests(t *testing.T) {
	st := &mockStore{records: []user.User{
		{ID: "user_001", FullName: "Alice", Interests: []string{"chess"}},
	}}
	uc := NewUserUsecase(st)

	interests := []string{"hiking", "jazz"}
	got, err := uc.UpdateUser(context.Background(), "user_001", UpdateUserInput{Interests: &interests})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Interests) != 2 || got.Interests[0] != "hiking" {
		t.Fatalf("interests not replaced: %v", got.Interests)
	}
}

func TestUserUsecase_UpdateUser_UnknownID(t *testing.T) {
	st := &mockStore{records: []user.User{{ID: "user_001", FullName: "Alice"}}}
	uc := NewUserUsecase(st)

	_, err := uc.UpdateUser(context.Background(), "user_999", UpdateUserInput{FullName: strPtr("X")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(st.saved) != 0 {
		t.Fatal("nothing should be persisted for an unknown id")
	}
}

func TestUserUsecase_UpdateUser_SaveFailure(t *testing.T) {
	st := &mockStore{
		records: []user.User{{ID: "user_001", FullName: "Alice"}},
		saveErr: store.ErrWrite,
	}
	uc := NewUserUsecase(st)

	_, err := uc.UpdateUser(context.Background(), "user_001", UpdateUserInput{FullName: strPtr("X")})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestUpdateUserInput_IsEmpty(t *testing.T) {
	if !(UpdateUserInput{}).IsEmpty() {
		t.Fatal("zero input must be empty")
	}
	if (UpdateUserInput{FullName: strPtr("A")}).IsEmpty() {
		t.Fatal("input with a field must not be empty")
	}
}
