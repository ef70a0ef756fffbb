// Package state is the typed view of the portal's persistent client state:
// the session token, the local roster of fallback registrations and the
// display identity of a fallback session.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
	"github.com/dmitrijs2005/voteportal/internal/client/repositories/kv"
)

// Keys are stable for the lifetime of a state database.
const (
	KeyToken        = "token"
	KeyRoster       = "mock_users"
	KeyMockIdentity = "mock_user"
)

// ErrCorrupted is returned when a stored roster or identity cannot be decoded.
var ErrCorrupted = errors.New("corrupted state value")

type Store struct {
	repo kv.Repository
}

func NewStore(repo kv.Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the stored session token, or "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SetToken replaces the session token. Only one token is ever stored.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, KeyToken, []byte(token))
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken)
}

// Roster returns the locally registered credentials in insertion order.
func (s *Store) Roster(ctx context.Context) ([]models.Credential, error) {
	b, err := s.repo.Get(ctx, KeyRoster)
	if err != nil {
		return nil, err
	}
	return decodeRoster(b)
}

// AppendCredential adds c to the end of the roster atomically.
func (s *Store) AppendCredential(ctx context.Context, c models.Credential) error {
	return s.repo.Update(ctx, KeyRoster, func(cur []byte) ([]byte, error) {
		roster, err := decodeRoster(cur)
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
		return json.Marshal(roster)
	})
}

// FindByMatric returns the first roster entry with the given matric number,
// or nil when there is none.
func (s *Store) FindByMatric(ctx context.Context, matric string) (*models.Credential, error) {
	roster, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].MatricNo == matric {
			return &roster[i], nil
		}
	}
	return nil, nil
}

// MockIdentity returns the fallback session identity, or nil.
func (s *Store) MockIdentity(ctx context.Context) (*models.Identity, error) {
	b, err := s.repo.Get(ctx, KeyMockIdentity)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var id models.Identity
	if err := json.Unmarshal(b, &id); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, KeyMockIdentity, err)
	}
	return &id, nil
}

func (s *Store) SetMockIdentity(ctx context.Context, id models.Identity) error {
	b, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyMockIdentity, b)
}

func (s *Store) ClearMockIdentity(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyMockIdentity)
}

func decodeRoster(b []byte) ([]models.Credential, error) {
	if len(b) == 0 {
		return []models.Credential{}, nil
	}
	var roster []models.Credential
	if err := json.Unmarshal(b, &roster); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, KeyRoster, err)
	}
	if roster == nil {
		roster = []models.Credential{}
	}
	return roster, nil
}

// Reset removes every key: session, fallback identity and the local roster.
// It returns how many keys were removed.
func (s *Store) Reset(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Clear(ctx); err != nil {
		return 0, err
	}
	return len(all), nil
}
