package http

import (
	"errors"
	"net/http"
	"strings"

	"gasdelivery/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the auth middleware stores the
// authenticated actor under.
const actorContextKey = "actor"

var (
	errMissingAuthorization = errors.New("missing authorization header")
	errInvalidAuthorization = errors.New("invalid authorization header")
)

// actorClaims are the token claims the engine needs: the caller's identity in
// the subject and their directory role.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer JWT on every request and resolves it to
// a kernel.Actor in the request context. Tokens are issued by the identity
// service; this engine only verifies them.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFromHeader(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromHeader(header, secret string) (kernel.Actor, error) {
	if header == "" {
		return kernel.Actor{}, errMissingAuthorization
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return kernel.Actor{}, errInvalidAuthorization
	}

	return parseActorToken(strings.TrimSpace(parts[1]), secret)
}

// parseActorToken validates an HS256 token and extracts the actor.
func parseActorToken(tokenStr, secret string) (kernel.Actor, error) {
	claims := &actorClaims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return kernel.Actor{}, err
	}
	if !tok.Valid {
		return kernel.Actor{}, errors.New("invalid token")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, errors.New("invalid subject claim")
	}
	role, err := kernel.RoleFromString(strings.ToLower(claims.Role))
	if err != nil {
		return kernel.Actor{}, errors.New("invalid role claim")
	}

	return kernel.NewActor(id, role)
}

// actorFromContext returns the actor the middleware stored.
func actorFromContext(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errMissingAuthorization
	}
	return actor, nil
}
