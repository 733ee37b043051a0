package middleware

import (
	"context"
	"errors"
	"net/http"

	"astralnexus/pkg/jwt"

	"go.uber.org/zap"
)

const (
	AuthTokenHeader = "AUTH_TOKEN"
	OperatorRole    = "operator"

	OperatorKey contextKey = "operator"
)

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

// NewAuthMiddleware returns a middleware that lets every request through when
// validator is nil.
func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

func (m *AuthMiddleware) RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.validator == nil {
			next.ServeHTTP(w, r)
			return
		}

		requestId := requestID(r)
		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication failed", "AUTH_TOKEN header is required")
			m.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestId)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			detail := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				detail = "token expired"
			}
			writeError(w, http.StatusUnauthorized, "Authentication failed", detail)
			m.logs.Errorw("token validation failed", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		if role, _ := claims["role"].(string); role != OperatorRole {
			writeError(w, http.StatusForbidden, "Authentication failed", "operator role required")
			m.logs.Errorw("token lacks operator role", "role", claims["role"], "path", r.URL.Path, "request_id", requestId)
			return
		}

		username, _ := claims["username"].(string)
		ctx := context.WithValue(r.Context(), OperatorKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
