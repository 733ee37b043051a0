package middleware

import (
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name RequestRecorder . RequestRecorder
type RequestRecorder interface {
	ObserveRequest(route, method string, status int, duration time.Duration)
}
