// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_recommendations_total",
			Help: "Recommendation requests by outcome (success or error code)",
		},
		[]string{"outcome"},
	)

	RefinementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_refinements_total",
			Help: "Predicted outfits overridden for extreme temperatures",
		},
		[]string{"band"},
	)

	WeatherFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_fetch_duration_seconds",
			Help:    "Weather lookup latency",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	WeatherCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_lookups_total",
			Help: "Weather cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)
)

func ObserveRecommendation(outcome string) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
}

func ObserveRefinement(band string) {
	RefinementsTotal.WithLabelValues(band).Inc()
}

func ObserveWeatherFetch(source string, d time.Duration) {
	WeatherFetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

func ObserveCacheLookup(result string) {
	WeatherCacheLookups.WithLabelValues(result).Inc()
}

func ObserveHTTPRequest(method, path string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}
