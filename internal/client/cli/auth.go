package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
	"github.com/dmitrijs2005/voteportal/internal/client/services"
	"github.com/dmitrijs2005/voteportal/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the six registration fields and submits them.
//
// Validation and storage errors are printed and returned. A fallback
// registration is reported as success, with the "(mock)" message.
func (a *App) Register(ctx context.Context) error {
	var c models.Credential
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Surname", &c.Surname},
		{"First name", &c.FirstName},
		{"Email", &c.Email},
		{"Matric number", &c.MatricNo},
		{"Phone (optional)", &c.Phone},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	c.Password = string(pw)
	shared.WipeByteArray(pw)

	res, err := a.authService.Register(ctx, c)
	if err != nil {
		fmt.Fprintln(a.out, services.UserMessage(err))
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login prompts for matric number and password.
//
// The connectivity mode follows the way the session was established: a
// fallback login means the API was unreachable.
func (a *App) Login(ctx context.Context) error {
	matric, err := getSimpleText(a.reader, "Matric number", a.out)
	if err != nil {
		return err
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}

	password := string(pw)
	shared.WipeByteArray(pw)

	res, err := a.authService.Login(ctx, matric, password)
	if err != nil {
		fmt.Fprintln(a.out, services.UserMessage(err))
		if errors.Is(err, services.ErrLoginFailed) {
			a.setMode(ctx, ModeOffline)
		}
		return err
	}

	switch res.Mode {
	case services.ModeOffline:
		a.setMode(ctx, ModeOffline)
		fmt.Fprintln(a.out, "Logged in (offline, local roster)")
	default:
		a.setMode(ctx, ModeOnline)
		fmt.Fprintln(a.out, "Logged in")
	}
	return nil
}

// Logout drops the session token and fallback identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, services.UserMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	id, err := a.authService.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	switch {
	case id != nil:
		fmt.Fprintf(a.out, "%s (%s)\n", id.Name, id.MatricNumber)
	case a.isLoggedIn(ctx):
		fmt.Fprintln(a.out, "Logged in")
	default:
		fmt.Fprintln(a.out, "Not logged in")
	}
	return nil
}

// Status pings the API and prints whether it is reachable.
func (a *App) Status(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		fmt.Fprintf(a.out, "API unreachable: %v\n", err)
		return nil
	}
	a.setMode(ctx, ModeOnline)
	fmt.Fprintln(a.out, "API reachable")
	return nil
}

// Reset deletes the local roster and the session after a "yes" confirmation.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete the local roster and session? Type yes to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	n, err := a.authService.ResetLocalData(ctx)
	if err != nil {
		fmt.Fprintln(a.out, services.UserMessage(err))
		return err
	}
	fmt.Fprintf(a.out, "Local data removed (%d entries)\n", n)
	return nil
}
