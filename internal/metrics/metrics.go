// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_coach_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interview_coach_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendations
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_coach_recommendations_total",
			Help: "Total number of follow-up recommendation requests",
		},
		[]string{"role", "outcome"}, // outcome: served, empty, degraded
	)

	RecommendationSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "interview_coach_recommendation_size",
			Help:    "Number of questions returned per recommendation",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Submissions
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_coach_submissions_total",
			Help: "Total number of recorded solutions",
		},
		[]string{"hints_used"},
	)

	SubmissionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_coach_submission_errors_total",
			Help: "Total number of solutions the store failed to record",
		},
	)

	// Store
	SolutionsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interview_coach_solutions_stored",
			Help: "Number of solutions in the submission store at the last poll",
		},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "interview_coach_store_up",
			Help: "Whether the submission store answered the last ping (1) or not (0)",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRecommendation records the outcome of one recommendation call
func RecordRecommendation(role, outcome string, size int) {
	RecommendationsTotal.WithLabelValues(role, outcome).Inc()
	RecommendationSize.Observe(float64(size))
}

// RecordSubmission records an accepted solution
func RecordSubmission(hintsUsed int) {
	SubmissionsTotal.WithLabelValues(strconv.Itoa(hintsUsed)).Inc()
}
