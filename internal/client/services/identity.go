package services

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
)

// CurrentIdentity returns who the session belongs to, for display only.
//
// A fallback session has its identity stored locally. For a remote session
// the token is read as a JWT without verifying it (the portal has no key and
// only needs a name to show). Opaque tokens yield (nil, nil).
func (a *authService) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	id, err := a.store.MockIdentity(ctx)
	if err != nil || id != nil {
		return id, err
	}

	tok, err := a.store.Token(ctx)
	if err != nil {
		return nil, err
	}
	if tok == "" || IsMockToken(tok) {
		return nil, nil
	}
	return identityFromToken(tok), nil
}

func identityFromToken(tok string) *models.Identity {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil
	}

	id := &models.Identity{
		Name:         firstClaim(claims, "name", "unique_name", "given_name"),
		MatricNumber: firstClaim(claims, "matricNumber", "matricNo", "sub"),
	}
	if id.Name == "" && id.MatricNumber == "" {
		return nil
	}
	return id
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
