// Package services contains the application services shared by the web portal
// and the terminal client. This file holds the authentication flow:
// registration and login against the remote API with a local-roster fallback,
// plus logout and session queries.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/voteportal/internal/client/client"
	"github.com/dmitrijs2005/voteportal/internal/client/models"
	"github.com/dmitrijs2005/voteportal/internal/client/state"
	"github.com/dmitrijs2005/voteportal/internal/logging"
)

const (
	DefaultRegisterRedirectDelay = 1500 * time.Millisecond
	DefaultFallbackRedirectDelay = 1200 * time.Millisecond

	mockTokenPrefix = "mock_"
)

// Mode tells how a session was established.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// AuthService defines the authentication operations of the portal.
//
// Contract:
//   - Register: remote registration, falling back to the local roster when the
//     remote call is not confirmed successful.
//   - Login: remote login; only a transport failure falls back to the roster.
//   - Logout: forget the session token and fallback identity.
//   - ResetLocalData: Logout plus dropping the local roster.
//   - IsAuthenticated / CurrentIdentity: session queries.
//   - Ping: remote liveness.
type AuthService interface {
	Register(ctx context.Context, c models.Credential) (RegisterResult, error)
	Login(ctx context.Context, matric, password string) (LoginResult, error)
	Logout(ctx context.Context) error
	ResetLocalData(ctx context.Context) (int, error)
	IsAuthenticated(ctx context.Context) (bool, error)
	CurrentIdentity(ctx context.Context) (*models.Identity, error)
	Ping(ctx context.Context) error
}

type RegisterResult struct {
	// Fallback is true when the record went to the local roster.
	Fallback bool
	Message  string
	// RedirectAfter is how long the success message stays before the login view.
	RedirectAfter time.Duration
	Outcome       client.Outcome
}

type LoginResult struct {
	Mode Mode
}

// Options tune the flow. Zero delays mean the defaults.
type Options struct {
	RegisterRedirectDelay time.Duration
	FallbackRedirectDelay time.Duration
	// StrictOfflineLogin makes the fallback compare the password with the
	// roster entry. Without it any password works for a known matric number.
	StrictOfflineLogin bool
}

// newMockToken is a test seam.
var newMockToken = func() string {
	return mockTokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

type authService struct {
	client   client.Client
	store    *state.Store
	validate *validator.Validate
	logger   logging.Logger
	opts     Options
}

// NewAuthService wires the flow to an API client and the state store.
func NewAuthService(c client.Client, store *state.Store, logger logging.Logger, opts Options) AuthService {
	if opts.RegisterRedirectDelay <= 0 {
		opts.RegisterRedirectDelay = DefaultRegisterRedirectDelay
	}
	if opts.FallbackRedirectDelay <= 0 {
		opts.FallbackRedirectDelay = DefaultFallbackRedirectDelay
	}
	return &authService{
		client:   c,
		store:    store,
		validate: validator.New(),
		logger:   logger.With("component", "auth"),
		opts:     opts,
	}
}

// Register validates c and sends it to the API. Anything other than a
// confirmed success appends c to the local roster instead, including
// ambiguous network errors where the remote record may exist after all.
func (a *authService) Register(ctx context.Context, c models.Credential) (RegisterResult, error) {
	if err := a.validate.Struct(c); err != nil {
		return RegisterResult{}, newValidationError(msgRegisterRequired, err)
	}

	res := a.client.Register(ctx, c)
	if res.Outcome == client.OutcomeSuccess {
		a.logger.Info(ctx, "registered", "matric", c.MatricNo)
		return RegisterResult{
			Message:       "Registration successful! Redirecting to login...",
			RedirectAfter: a.opts.RegisterRedirectDelay,
			Outcome:       res.Outcome,
		}, nil
	}

	args := []any{"matric", c.MatricNo, "outcome", res.Outcome.String(), "error", res.Err}
	if res.Response != nil && res.Response.Message != "" {
		args = append(args, "api_message", res.Response.Message)
	}
	a.logger.Warn(ctx, "remote registration not confirmed, storing locally", args...)

	if err := a.store.AppendCredential(ctx, c); err != nil {
		return RegisterResult{}, fmt.Errorf("fallback registration: %w", err)
	}
	return RegisterResult{
		Fallback:      true,
		Message:       "Registered (mock). Redirecting to login...",
		RedirectAfter: a.opts.FallbackRedirectDelay,
		Outcome:       res.Outcome,
	}, nil
}

// Login authenticates against the API. A reachable API that returns no token
// is an error (ErrNoToken) and never falls back; only a transport failure
// consults the local roster.
func (a *authService) Login(ctx context.Context, matric, password string) (LoginResult, error) {
	req := models.LoginRequest{MatricNumber: matric, Password: password}
	if err := a.validate.Struct(req); err != nil {
		return LoginResult{}, newValidationError(msgLoginRequired, err)
	}

	res := a.client.Login(ctx, matric, password)
	switch res.Outcome {
	case client.OutcomeSuccess:
		if err := a.store.SetToken(ctx, res.Token); err != nil {
			return LoginResult{}, fmt.Errorf("save token: %w", err)
		}
		if err := a.store.ClearMockIdentity(ctx); err != nil {
			return LoginResult{}, fmt.Errorf("clear mock identity: %w", err)
		}
		a.logger.Info(ctx, "login successful", "matric", matric, "mode", ModeOnline)
		return LoginResult{Mode: ModeOnline}, nil

	case client.OutcomeSoftFailure:
		a.logger.Warn(ctx, "login response carried no token", "matric", matric)
		return LoginResult{}, ErrNoToken

	default:
		a.logger.Warn(ctx, "login API unavailable, trying local roster", "matric", matric, "error", res.Err)
		return a.offlineLogin(ctx, matric, password)
	}
}

func (a *authService) offlineLogin(ctx context.Context, matric, password string) (LoginResult, error) {
	found, err := a.store.FindByMatric(ctx, matric)
	if err != nil {
		return LoginResult{}, fmt.Errorf("read local roster: %w", err)
	}
	if found == nil {
		a.logger.Info(ctx, "offline login unsuccessful: unknown matric", "matric", matric)
		return LoginResult{}, ErrLoginFailed
	}

	if a.opts.StrictOfflineLogin {
		if subtle.ConstantTimeCompare([]byte(found.Password), []byte(password)) == 0 {
			a.logger.Info(ctx, "offline login unsuccessful: password mismatch", "matric", matric)
			return LoginResult{}, ErrLoginFailed
		}
	} else {
		a.logger.Warn(ctx, "offline login does not verify the password", "matric", matric)
	}

	if err := a.store.SetToken(ctx, newMockToken()); err != nil {
		return LoginResult{}, fmt.Errorf("save token: %w", err)
	}
	id := models.Identity{Name: found.DisplayName(), MatricNumber: found.MatricNo}
	if err := a.store.SetMockIdentity(ctx, id); err != nil {
		return LoginResult{}, fmt.Errorf("save mock identity: %w", err)
	}

	a.logger.Info(ctx, "offline login successful", "matric", matric, "mode", ModeOffline)
	return LoginResult{Mode: ModeOffline}, nil
}

// Logout forgets the session. The local roster is kept.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearToken(ctx); err != nil {
		return err
	}
	if err := a.store.ClearMockIdentity(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

// ResetLocalData wipes all locally persisted state, the roster included.
func (a *authService) ResetLocalData(ctx context.Context) (int, error) {
	n, err := a.store.Reset(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset local data: %w", err)
	}
	a.logger.Warn(ctx, "local data removed", "keys", n)
	return n, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	tok, err := a.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return tok != "", nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// IsMockToken reports whether tok was minted by the offline fallback.
func IsMockToken(tok string) bool {
	return strings.HasPrefix(tok, mockTokenPrefix)
}
