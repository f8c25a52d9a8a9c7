package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(jobsProcessedTotal, jobsInFlight) }

var jobsProcessedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "formcoach_jobs_processed_total",
		Help: "Total number of analysis jobs reaching a terminal state, labeled by status.",
	},
	[]string{"status"}, // 'completed', 'failed'
)

var jobsInFlight = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "formcoach_jobs_in_flight",
		Help: "Number of analysis jobs currently being simulated.",
	},
)

func IncJobProcessed(status string) {
	jobsProcessedTotal.WithLabelValues(status).Inc()
}

func JobStarted()  { jobsInFlight.Inc() }
func JobFinished() { jobsInFlight.Dec() }
