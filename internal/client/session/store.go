// Package session persists credential records and the active session in a
// key-value repository.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/interviewdesk/internal/client/models"
	"github.com/dmitrijs2005/interviewdesk/internal/client/repositories/kv"
	"github.com/dmitrijs2005/interviewdesk/internal/logging"
)

const (
	CredentialsKey   = "interview_platform_users"
	ActiveSessionKey = "interview_platform_current_user"
)

// DefaultOnParseFailure decodes raw JSON into a T. Missing and malformed
// content both yield the zero T; the returned error is informational and
// callers log it instead of surfacing it.
func DefaultOnParseFailure[T any](raw []byte) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Store reads and writes the two persisted session keys. Every write is a
// full overwrite of its key.
type Store struct {
	repo kv.Repository
	log  logging.Logger
}

func NewStore(repo kv.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{repo: repo, log: log.With("component", "session")}
}

// LoadAllCredentials returns the credential mapping keyed by normalized
// email. It never fails: unreadable content yields an empty map and null
// records are dropped.
func (s *Store) LoadAllCredentials(ctx context.Context) map[string]models.CredentialRecord {
	raw, err := s.repo.Get(ctx, CredentialsKey)
	if err != nil {
		s.log.Warn(ctx, "credentials read failed, using empty mapping", "key", CredentialsKey, "error", err)
		return map[string]models.CredentialRecord{}
	}

	decoded, err := DefaultOnParseFailure[map[string]*models.CredentialRecord](raw)
	if err != nil {
		s.log.Warn(ctx, "credentials unreadable, using empty mapping", "key", CredentialsKey, "error", err)
	}

	m := make(map[string]models.CredentialRecord, len(decoded))
	for email, rec := range decoded {
		if rec == nil {
			s.log.Warn(ctx, "skipping null credential record", "key", CredentialsKey, "email", email)
			continue
		}
		m[email] = *rec
	}
	return m
}

func (s *Store) SaveAllCredentials(ctx context.Context, creds map[string]models.CredentialRecord) error {
	if creds == nil {
		creds = map[string]models.CredentialRecord{}
	}
	b, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := s.repo.Set(ctx, CredentialsKey, b); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// LoadActiveSession returns the persisted profile, or nil when there is none
// or it cannot be read.
func (s *Store) LoadActiveSession(ctx context.Context) *models.UserProfile {
	raw, err := s.repo.Get(ctx, ActiveSessionKey)
	if err != nil {
		s.log.Warn(ctx, "session read failed, treating as absent", "key", ActiveSessionKey, "error", err)
		return nil
	}

	p, err := DefaultOnParseFailure[*models.UserProfile](raw)
	if err != nil {
		s.log.Warn(ctx, "session unreadable, treating as absent", "key", ActiveSessionKey, "error", err)
	}
	return p
}

func (s *Store) SaveActiveSession(ctx context.Context, p models.UserProfile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.repo.Set(ctx, ActiveSessionKey, b); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Store) ClearActiveSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, ActiveSessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close releases the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}
