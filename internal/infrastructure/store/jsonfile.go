package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"interest-match/internal/domain/user"
)

var (
	ErrUnavailable = errors.New("record store unavailable")
	ErrMalformed   = errors.New("record store data malformed")
	ErrWrite       = errors.New("record store write failed")
)

// JSONFile persists the full user collection as one indented JSON array.
// Every LoadAll reads the file fresh, so each request works on its own
// snapshot. Durability and write locking are out of scope.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (s *JSONFile) LoadAll(_ context.Context) ([]user.User, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var records []user.User
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}

func (s *JSONFile) SaveAll(_ context.Context, records []user.User) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
