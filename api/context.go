package api

import (
	"context"

	"github.com/blogworks/blogs-backend/services"
)

type keyType string

const claimsKey keyType = "claims"

func ctxWithClaims(ctx context.Context, claims *services.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ctxClaims returns the authenticated token claims, or nil when the
// request did not pass the auth middleware.
func ctxClaims(ctx context.Context) *services.Claims {
	claims, _ := ctx.Value(claimsKey).(*services.Claims)
	return claims
}
