package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moviechill_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LoginAttempts counts login attempts by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moviechill_login_attempts_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// FollowToggles counts follow toggles by resulting state.
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moviechill_follow_toggles_total",
		Help: "Total number of follow toggles by resulting state",
	}, []string{"state"})
)
