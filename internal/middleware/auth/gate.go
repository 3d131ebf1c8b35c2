package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/tokens"
)

const claimsKey = "user"

// Gate verifies bearer tokens and enforces a minimum role per route.
type Gate struct {
	verify echo.MiddlewareFunc
}

func NewGate(issuer *tokens.Issuer) *Gate {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return issuer.Parse(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Warn().
				Err(err).
				Int("status", http.StatusUnauthorized).
				Msg("auth_failed")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
	return &Gate{verify: verify}
}

// Require admits requests whose token carries minRole or a higher one.
func (g *Gate) Require(minRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return g.verify(func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			ctx := c.Request().Context()
			l := logging.FromContext(ctx).With().
				Str("username", claims.Username).
				Str("role", claims.Role).
				Logger()

			if models.RoleRank(claims.Role) < models.RoleRank(minRole) {
				l.Warn().Int("status", http.StatusForbidden).Str("required", minRole).Msg("auth_forbidden")
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}

			c.SetRequest(c.Request().WithContext(logging.IntoContext(ctx, l)))
			return next(c)
		})
	}
}

// ClaimsFrom returns the verified claims stored by the gate.
func ClaimsFrom(c echo.Context) (*tokens.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*tokens.Claims)
	return claims, ok && claims != nil
}
