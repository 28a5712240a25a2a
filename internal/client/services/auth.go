// Package services contains application services for the interviewdesk client.
// This file defines the authentication service: signup, login, logout and
// profile updates against the persisted session store.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/interviewdesk/internal/client/models"
	"github.com/dmitrijs2005/interviewdesk/internal/client/session"
	"github.com/dmitrijs2005/interviewdesk/internal/cryptox"
	"github.com/dmitrijs2005/interviewdesk/internal/logging"
)

// DefaultDelay is the simulated network latency applied to Login and Signup.
const DefaultDelay = 800 * time.Millisecond

const minPasswordLength = 6

// AuthService defines identity operations for the CLI.
//
// Contract:
//   - Open: restore a previously persisted session; IsLoading is true until
//     it returns.
//   - Login/Signup: wait for the simulated delay, then authenticate or
//     register. Failures are *AuthError values.
//   - Logout: drop the active session; always succeeds.
//   - UpdateProfile: merge into the active profile; no-op without one.
//   - Close: release the underlying storage.
//
// Login and Signup honor context cancellation during the delay.
type AuthService interface {
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	IsLoading() bool
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, u models.ProfileUpdate) error
	CurrentUser() (models.UserProfile, bool)
}

// Option customizes an authService.
type Option func(*authService)

// WithDelay overrides DefaultDelay. Zero disables the wait.
func WithDelay(d time.Duration) Option {
	return func(a *authService) { a.delay = d }
}

func WithLogger(l logging.Logger) Option {
	return func(a *authService) { a.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(a *authService) { a.metrics = m }
}

// WithClock sets the time source for profile creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *authService) { a.now = now }
}

// WithIDGenerator sets the profile identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(a *authService) { a.newID = gen }
}

type authService struct {
	store   *session.Store
	hasher  cryptox.Hasher
	log     logging.Logger
	metrics *Metrics
	delay   time.Duration
	now     func() time.Time
	newID   func() string

	// mu guards current and loading.
	mu      sync.RWMutex
	current *models.UserProfile
	loading bool

	// writeMu serializes read-modify-write cycles on the credential mapping.
	writeMu sync.Mutex
}

// NewAuthService constructs an AuthService persisting through store and
// checking passwords with hasher.
func NewAuthService(store *session.Store, hasher cryptox.Hasher, opts ...Option) AuthService {
	a := &authService{
		store:   store,
		hasher:  hasher,
		log:     logging.Discard(),
		delay:   DefaultDelay,
		now:     time.Now,
		newID:   uuid.NewString,
		loading: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("component", "auth")
	return a
}

// Open restores the persisted session, if any. A missing or unreadable
// session leaves the service unauthenticated.
func (a *authService) Open(ctx context.Context) error {
	p := a.store.LoadActiveSession(ctx)

	a.mu.Lock()
	a.current = p
	a.loading = false
	a.mu.Unlock()

	if p != nil {
		a.log.Info(ctx, "session restored", "email", p.Email)
	}
	return nil
}

func (a *authService) Close(ctx context.Context) error {
	return a.store.Close()
}

func (a *authService) IsLoading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *authService) CurrentUser() (models.UserProfile, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return models.UserProfile{}, false
	}
	return a.current.Clone(), true
}

// Login checks password against the credential record for email. On success
// the stored profile becomes the active session.
func (a *authService) Login(ctx context.Context, email, password string) (err error) {
	started := time.Now()
	defer func() { a.metrics.observe("login", started, err) }()

	if err := a.wait(ctx); err != nil {
		return err
	}

	key := models.NormalizeEmail(email)
	rec, ok := a.store.LoadAllCredentials(ctx)[key]
	if !ok {
		a.log.Debug(ctx, "login: unknown email", "email", key)
		return ErrAccountNotFound
	}
	if !a.hasher.Verify(rec.Password, password) {
		a.log.Debug(ctx, "login: password mismatch", "email", key)
		return ErrIncorrectPassword
	}

	if err := a.activate(ctx, rec.Profile); err != nil {
		return err
	}
	a.log.Info(ctx, "logged in", "email", key)
	return nil
}

// Signup registers a new account and makes it the active session. The
// email conflict check runs before the password length check.
func (a *authService) Signup(ctx context.Context, email, password, name string) (err error) {
	started := time.Now()
	defer func() { a.metrics.observe("signup", started, err) }()

	if err := a.wait(ctx); err != nil {
		return err
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	key := models.NormalizeEmail(email)
	creds := a.store.LoadAllCredentials(ctx)
	if _, exists := creds[key]; exists {
		return ErrEmailTaken
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	stored, err := a.hasher.Hash(password)
	if err != nil {
		return internalError("failed to hash password", err)
	}

	profile := models.UserProfile{
		ID:        a.newID(),
		Email:     key,
		Name:      name,
		CreatedAt: a.now().UTC(),
		Badges:    []string{},
	}
	creds[key] = models.CredentialRecord{Password: stored, Profile: profile}

	if err := a.store.SaveAllCredentials(ctx, creds); err != nil {
		a.log.Error(ctx, "signup: credentials not saved", "email", key, "error", err)
		return internalError("failed to save account", err)
	}
	if err := a.activate(ctx, profile); err != nil {
		return err
	}
	a.log.Info(ctx, "signed up", "email", key, "id", profile.ID)
	return nil
}

// Logout clears the active session in memory and in storage. A storage
// failure is logged; the in-memory session is dropped regardless.
func (a *authService) Logout(ctx context.Context) {
	a.mu.Lock()
	a.current = nil
	a.mu.Unlock()

	err := a.store.ClearActiveSession(ctx)
	if err != nil {
		a.log.Error(ctx, "logout: session not cleared", "error", err)
	}
	a.metrics.observe("logout", time.Now(), err)
}

// UpdateProfile merges u into the active profile and persists it. The
// credential record stored under the pre-merge email is updated too when it
// exists. Without an active session nothing is read or written.
func (a *authService) UpdateProfile(ctx context.Context, u models.ProfileUpdate) (err error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.RLock()
	cur := a.current
	a.mu.RUnlock()
	if cur == nil {
		return nil
	}

	started := time.Now()
	defer func() { a.metrics.observe("update_profile", started, err) }()

	updated := u.Apply(*cur)
	if err := a.activate(ctx, updated); err != nil {
		return err
	}

	creds := a.store.LoadAllCredentials(ctx)
	rec, ok := creds[cur.Email]
	if !ok {
		a.log.Debug(ctx, "update profile: no credential record", "email", cur.Email)
		return nil
	}
	rec.Profile = updated
	creds[cur.Email] = rec
	if err := a.store.SaveAllCredentials(ctx, creds); err != nil {
		a.log.Error(ctx, "update profile: credentials not saved", "email", cur.Email, "error", err)
		return internalError("failed to save account", err)
	}
	return nil
}

// activate persists p as the active session, then installs it in memory.
func (a *authService) activate(ctx context.Context, p models.UserProfile) error {
	if err := a.store.SaveActiveSession(ctx, p); err != nil {
		a.log.Error(ctx, "session not saved", "email", p.Email, "error", err)
		return internalError("failed to save session", err)
	}
	p = p.Clone()
	a.mu.Lock()
	a.current = &p
	a.mu.Unlock()
	return nil
}

func (a *authService) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
