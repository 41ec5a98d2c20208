package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess      = "success"
	outcomeAuthFailed   = "auth_failed"
	outcomeInconsistent = "inconsistent_state"
	outcomeInvalidRole  = "invalid_role"
	outcomeInternal     = "internal_error"
)

// loginAttempts — исходы логина.
var loginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ecoentorno_login_attempts_total",
		Help: "Login attempts by outcome",
	},
	[]string{"outcome"},
)
