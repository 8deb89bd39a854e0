package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TMDBRequests counts upstream calls by endpoint group and outcome
	TMDBRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goflix_tmdb_requests_total",
		Help: "TMDB API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// TMDBCacheHits counts responses served from the local cache
	TMDBCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goflix_tmdb_cache_hits_total",
		Help: "TMDB responses served from the response cache.",
	})

	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goflix_http_requests_total",
		Help: "HTTP API requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes API request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "goflix_http_request_duration_seconds",
		Help:    "HTTP API request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// FavoritesToggles counts favorite toggles by resulting state
	FavoritesToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goflix_favorites_toggles_total",
		Help: "Favorite toggles by resulting membership.",
	}, []string{"state"})
)

// Outcomes recorded in TMDBRequests
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeStatus    = "bad_status"
	OutcomeDecode    = "decode_error"
)
