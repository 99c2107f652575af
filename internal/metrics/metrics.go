// Package metrics defines the application's Prometheus instruments.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Recorder struct {
	recommendations  *prometheus.CounterVec
	classifications  *prometheus.CounterVec
	catalogReloads   *prometheus.CounterVec
	upstreamDegrades *prometheus.CounterVec
	recommendSeconds prometheus.Histogram
}

func NewRecorder() *Recorder {
	return &Recorder{
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardwise",
			Name:      "recommendations_total",
			Help:      "Recommendation responses served, by resolved taxonomy",
		}, []string{"taxonomy"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardwise",
			Name:      "classifications_total",
			Help:      "Classifier results, by tier that produced the match",
		}, []string{"source"}),
		catalogReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardwise",
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts, by outcome",
		}, []string{"status"}),
		upstreamDegrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardwise",
			Name:      "upstream_degrades_total",
			Help:      "Lookups that failed and degraded to a fallback path, by source",
		}, []string{"source"}),
		recommendSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cardwise",
			Name:      "recommend_duration_seconds",
			Help:      "End-to-end recommendation latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (r *Recorder) Register(reg prometheus.Registerer) {
	reg.MustRegister(
		r.recommendations,
		r.classifications,
		r.catalogReloads,
		r.upstreamDegrades,
		r.recommendSeconds,
	)
}

func (r *Recorder) Recommendation(taxonomy string) {
	r.recommendations.WithLabelValues(taxonomy).Inc()
}

func (r *Recorder) Classification(source string) {
	r.classifications.WithLabelValues(source).Inc()
}

func (r *Recorder) CatalogReload(status string) {
	r.catalogReloads.WithLabelValues(status).Inc()
}

func (r *Recorder) UpstreamDegrade(source string) {
	r.upstreamDegrades.WithLabelValues(source).Inc()
}

func (r *Recorder) RecommendDuration(seconds float64) {
	r.recommendSeconds.Observe(seconds)
}
