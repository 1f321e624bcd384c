package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "trainboard/internal/errors"
)

// ClaimsContextKey is where the verified claims are stored on the echo context.
const ClaimsContextKey = "user"

// Middleware verifies the bearer token, rejects revoked tokens and stores
// *Claims on the context. Every failure is reported as a bare 401.
func Middleware(jwtService *JWTService, tokens TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(raw)
			if err != nil {
				return nil, err
			}
			if tokens != nil && tokens.IsRevoked(c.Request().Context(), claims.ID) {
				return nil, apperrors.ErrUnauthorized
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return toHTTPError(apperrors.ErrUnauthorized)
		},
	})
}

// ClaimsFrom returns the claims stored by Middleware, or nil on public routes.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(ClaimsContextKey).(*Claims)
	return claims
}

// RequireRole allows the request through only when the caller holds one of roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return toHTTPError(apperrors.ErrUnauthorized)
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return toHTTPError(apperrors.ErrForbidden)
		}
	}
}

func toHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
