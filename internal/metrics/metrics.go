package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelType   = "type"
	typeSuccess = "success"
	typeFailed  = "failed"
)

var (
	relayerFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_fetches",
		Help: "The total number of proof source fetches (counter)",
	}, []string{labelType})

	relayerSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relayer_submissions",
		Help: "The total number of registry submissions (counter)",
	}, []string{labelType})

	fetchTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fetch_time",
		Help:    "A histogram of proof source fetch duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelType})

	submitTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "submit_time",
		Help:    "A histogram of registry submission duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30},
	}, []string{labelType})

	lastObservedHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "last_observed_height",
		Help: "The height of the last state fetched from the proof source",
	})

	lastRecordedHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "last_recorded_height",
		Help: "The height of the last snapshot persisted to the storage",
	})

	snapshotAge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snapshot_age_seconds",
		Help: "Seconds since the last snapshot was persisted to the storage",
	})

	heightRegressions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "height_regressions",
		Help: "The total number of observations below the recorded height (counter)",
	})

	abandonedSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "abandoned_submissions",
		Help: "The total number of proofs abandoned after repeated failed submissions (counter)",
	})
)

func incFailedFetches() {
	relayerFetches.With(prometheus.Labels{
		labelType: typeFailed,
	}).Inc()
}

func incSuccessFetches() {
	relayerFetches.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Inc()
}

func incFailedSubmissions() {
	relayerSubmissions.With(prometheus.Labels{
		labelType: typeFailed,
	}).Inc()
}

func incSuccessSubmissions() {
	relayerSubmissions.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Inc()
}

func AddFailedFetch(dur float64) {
	incFailedFetches()
	fetchTime.With(prometheus.Labels{
		labelType: typeFailed,
	}).Observe(dur)
}

func AddSuccessFetch(dur float64) {
	incSuccessFetches()
	fetchTime.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Observe(dur)
}

func AddFailedSubmit(dur float64) {
	incFailedSubmissions()
	submitTime.With(prometheus.Labels{
		labelType: typeFailed,
	}).Observe(dur)
}

func AddSuccessSubmit(dur float64) {
	incSuccessSubmissions()
	submitTime.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Observe(dur)
}

func SetLastObservedHeight(height uint64) {
	lastObservedHeight.Set(float64(height))
}

func SetLastRecordedHeight(height uint64) {
	lastRecordedHeight.Set(float64(height))
}

func SetSnapshotAge(seconds float64) {
	snapshotAge.Set(seconds)
}

func IncHeightRegressions() {
	heightRegressions.Inc()
}

func IncAbandonedSubmissions() {
	abandonedSubmissions.Inc()
}
