package usecase

import (
	"context"
	"errors"
	"fmt"

	"interest-match/internal/domain/user"
	"interest-match/internal/infrastructure/store"
)

type UpdateUserInput struct {
	FullName  *string
	Email     *string
	JobTitle  *string
	Company   *string
	Interests *[]string
}

// IsEmpty reports whether no field was provided at all.
func (in UpdateUserInput) IsEmpty() bool {
	return in.FullName == nil && in.Email == nil && in.JobTitle == nil &&
		in.Company == nil && in.Interests == nil
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (user.User, error)
}

type Users struct {
	store user.Store
}

func NewUserUsecase(st user.Store) *Users {
	return &Users{store: st}
}

func (u *Users) ListUsers(ctx context.Context) ([]user.User, error) {
	records, err := u.store.LoadAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return records, nil
}

func (u *Users) GetUser(ctx context.Context, id string) (user.User, error) {
	records, err := u.store.LoadAll(ctx)
	if err != nil {
		return user.User{}, mapStoreError(err)
	}

	for i := range records {
		if records[i].ID == id {
			return records[i], nil
		}
	}
	return user.User{}, ErrUserNotFound
}

// UpdateUser applies the provided fields to one record and persists the full
// collection. Omitted fields keep their current values.
func (u *Users) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (user.User, error) {
	records, err := u.store.LoadAll(ctx)
	if err != nil {
		return user.User{}, mapStoreError(err)
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return user.User{}, ErrUserNotFound
	}

	updated := records[idx]
	if in.FullName != nil {
		updated.FullName = *in.FullName
	}
	if in.Email != nil {
		updated.Email = *in.Email
	}
	if in.JobTitle != nil {
		updated.JobTitle = *in.JobTitle
	}
	if in.Company != nil {
		updated.Company = *in.Company
	}
	if in.Interests != nil {
		updated.Interests = *in.Interests
	}
	records[idx] = updated

	if err := u.store.SaveAll(ctx, records); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return updated, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrUnavailable) || errors.Is(err, store.ErrMalformed) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
