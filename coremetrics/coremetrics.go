// Package coremetrics instruments the pipeline with Prometheus counters
// and histograms — ambient observability IdentifySupportRegions accepts
// optionally, defaulting to a no-op Recorder when nil.
package coremetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder wraps a prometheus.Registry with the pipeline's metrics.
type Recorder struct {
	registry *prometheus.Registry

	regionsFound   prometheus.Counter
	blocksEmitted  prometheus.Counter
	blocksSkipped  *prometheus.CounterVec
	csgDuration    prometheus.Histogram
	rasterDuration prometheus.Histogram
}

// NewRecorder builds a Recorder registered against a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		regionsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "regions_found_total",
			Help: "Overhang regions found by component B.",
		}),
		blocksEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blocks_emitted_total",
			Help: "BlockSupport values successfully produced.",
		}),
		blocksSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blocks_skipped_total",
			Help: "Regions skipped by a local-skip error, by reason.",
		}, []string{"reason"}),
		csgDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "csg_call_duration_seconds",
			Help:    "Wall time of CSGBackend calls.",
			Buckets: prometheus.DefBuckets,
		}),
		rasterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rasterize_duration_seconds",
			Help:    "Wall time of DepthRasterizer calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.regionsFound, r.blocksEmitted, r.blocksSkipped, r.csgDuration, r.rasterDuration)
	return r
}

// Registry exposes the underlying prometheus.Registry for a host to
// serve on its own /metrics endpoint.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RegionFound increments the regions-found counter.
func (r *Recorder) RegionFound() {
	if r == nil {
		return
	}
	r.regionsFound.Inc()
}

// BlockEmitted increments the blocks-emitted counter.
func (r *Recorder) BlockEmitted() {
	if r == nil {
		return
	}
	r.blocksEmitted.Inc()
}

// BlockSkipped increments the blocks-skipped counter for reason.
func (r *Recorder) BlockSkipped(reason string) {
	if r == nil {
		return
	}
	r.blocksSkipped.WithLabelValues(reason).Inc()
}

// ObserveCSG records a CSGBackend call's duration.
func (r *Recorder) ObserveCSG(d time.Duration) {
	if r == nil {
		return
	}
	r.csgDuration.Observe(d.Seconds())
}

// ObserveRasterize records a DepthRasterizer call's duration.
func (r *Recorder) ObserveRasterize(d time.Duration) {
	if r == nil {
		return
	}
	r.rasterDuration.Observe(d.Seconds())
}
