package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xync_registrations_total",
		Help: "Successful user registrations.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xync_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	AuthRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xync_auth_rejections_total",
		Help: "Requests rejected by the bearer token middleware.",
	})

	PreviewFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xync_preview_fetches_total",
		Help: "Bookmark preview fetch attempts by outcome.",
	}, []string{"outcome"})
)
