package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuizzesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_quizzes_created_total",
			Help: "Number of quizzes handed out",
		},
	)

	SubmissionsGraded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_submissions_graded_total",
			Help: "Number of graded submissions",
		},
	)

	SubmissionScoreRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_submission_score_ratio",
			Help:    "score_total / score_max of graded submissions",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	Ingestions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_ingestions_total",
			Help: "Uploaded documents by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

var initOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			QuizzesCreated,
			SubmissionsGraded,
			SubmissionScoreRatio,
			Ingestions,
		)
	})
}

func ObserveSubmission(scoreTotal, scoreMax float64) {
	SubmissionsGraded.Inc()
	if scoreMax > 0 {
		SubmissionScoreRatio.Observe(scoreTotal / scoreMax)
	}
}

func ObserveIngestion(kind, outcome string) {
	Ingestions.WithLabelValues(kind, outcome).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
