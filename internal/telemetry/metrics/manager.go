package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterUpdates             *prometheus.CounterVec
	CounterWorkoutsLogged      *prometheus.CounterVec
	CounterUpdateErrors        prometheus.Counter
	CounterRateLimitedUpdates  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterDigestMessages      *prometheus.CounterVec

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramUpdateDuration  prometheus.Histogram
	HistDigestDuration       prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("sporttracker", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("sporttracker", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming http requests",
	}, []string{"method", "status"})
	counterUpdates := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "bot_updates",
		Help:      "The total number of handled telegram updates",
	}, []string{"kind"})
	counterWorkoutsLogged := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_logged",
		Help:      "The total number of logged workouts",
	}, []string{"type"})
	counterUpdateErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "bot_update_errors",
		Help:      "The total number of telegram updates that failed to be handled",
	})
	counterRateLimitedUpdates := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_updates",
		Help:      "The total number of rate limited telegram updates",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited http requests",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterDigestMessages := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "digest_messages",
		Help:      "The total number of weekly digest messages, by delivery status",
	}, []string{"status"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramUpdateDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "bot_update_duration_seconds",
		Help:      "Histogram of telegram update handling time in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
	histDigestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets: []float64{
			0.1, 1, 10, 60, 120, 240, 480, 1000, 2000, 4000,
		},
		Name: "digest_duration_seconds",
		Help: "Total duration of a single weekly digest broadcast in seconds",
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterUpdates:             counterUpdates,
		CounterWorkoutsLogged:      counterWorkoutsLogged,
		CounterUpdateErrors:        counterUpdateErrors,
		CounterRateLimitedUpdates:  counterRateLimitedUpdates,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterDigestMessages:      counterDigestMessages,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistogramUpdateDuration:    histogramUpdateDuration,
		HistDigestDuration:         histDigestDuration,
	}
}
