package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(uploadsTotal, uploadBytes) }

var uploadsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "formcoach_uploads_total",
		Help: "Total number of accepted video uploads.",
	},
)

var uploadBytes = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "formcoach_upload_bytes",
		Help:    "Size distribution of accepted video uploads.",
		Buckets: prometheus.ExponentialBuckets(1<<20, 4, 8), // 1 MiB .. 16 GiB
	},
)

func ObserveUpload(sizeBytes int64) {
	uploadsTotal.Inc()
	uploadBytes.Observe(float64(sizeBytes))
}
