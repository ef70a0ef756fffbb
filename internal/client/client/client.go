package client

import (
	"context"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
)

// Outcome classifies how a remote call ended so callers can branch on it
// instead of inspecting errors.
type Outcome int

const (
	// OutcomeSuccess: the API answered 2xx with the expected success shape.
	OutcomeSuccess Outcome = iota
	// OutcomeSoftFailure: the API answered 2xx but not with a success shape.
	OutcomeSoftFailure
	// OutcomeTransportFailure: no answer or a non-2xx status. An undecodable
	// 2xx body counts here for Register and as OutcomeSoftFailure for Login.
	OutcomeTransportFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSoftFailure:
		return "soft_failure"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

type RegisterResult struct {
	Outcome  Outcome
	Response *models.RegisterResponse
	// Err explains a transport failure; nil otherwise.
	Err error
}

type LoginResult struct {
	Outcome Outcome
	// Token is set only for OutcomeSuccess.
	Token string
	// Err explains a transport failure or an undecodable reply.
	Err error
}

// Client is the remote voting API as seen by the portal.
type Client interface {
	Register(ctx context.Context, c models.Credential) RegisterResult
	Login(ctx context.Context, matric, password string) LoginResult
	Ping(ctx context.Context) error
}

// TokenSource yields the current session token ("" when logged out).
// *state.Store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
