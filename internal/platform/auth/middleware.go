package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	RoleKey      contextKey = "role"
)

// Roles recognized by the access gate.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// RequireAuth rejects requests without a valid bearer token. On success the
// account id and role are stored on the request context.
func RequireAuth(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromRequest(c, issuer)
			if err != nil {
				return err
			}
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			attachClaims(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth attaches the caller's identity when a valid bearer token is
// present and lets anonymous requests through untouched. A malformed or
// expired token is still rejected rather than silently ignored.
func OptionalAuth(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := claimsFromRequest(c, issuer)
			if err != nil {
				return err
			}
			if claims != nil {
				attachClaims(c, claims)
			}
			return next(c)
		}
	}
}

// RequireRole rejects authenticated requests whose role claim does not match.
// Must be chained after RequireAuth.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if RoleFromContext(c.Request().Context()) != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// claimsFromRequest extracts and verifies the bearer token, if any. A nil
// result with nil error means no authorization header was supplied.
func claimsFromRequest(c echo.Context, issuer *TokenIssuer) (*Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := issuer.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

func attachClaims(c echo.Context, claims *Claims) {
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, AccountIDKey, claims.Subject)
	ctx = context.WithValue(ctx, RoleKey, claims.Role)
	c.SetRequest(c.Request().WithContext(ctx))
}

func AccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AccountIDKey).(string)
	return id
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(RoleKey).(string)
	return role
}
