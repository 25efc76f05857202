package handlers

import (
	"errors"
	"expvar"

	"github.com/oksasatya/account-core/internal/application"
)

// accountStats is published on /api/debug/vars under "accounts",
// keyed "<operation>.<outcome>".
var accountStats = expvar.NewMap("accounts")

func countOutcome(op string, err error) {
	accountStats.Add(op+"."+outcome(err), 1)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, application.ErrConflict):
		return "conflict"
	case errors.Is(err, application.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, application.ErrNotFound):
		return "not_found"
	case errors.Is(err, application.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}
