package user

import "context"

// Store is the record store contract. Records live as one flat collection
// that is loaded and saved wholesale; each load returns an independent
// snapshot.
type Store interface {
	LoadAll(ctx context.Context) ([]User, error)
	SaveAll(ctx context.Context, records []User) error
}
