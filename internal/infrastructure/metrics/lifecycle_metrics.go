package metrics

import (
	"bengal_portal/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type lifecycleMetrics struct {
	jobsCreated         prometheus.Counter
	jobsDeleted         prometheus.Counter
	jobStatusChanges    *prometheus.CounterVec
	quoteStatus         *prometheus.CounterVec
	identityResolutions *prometheus.CounterVec
	assistantFallbacks  *prometheus.CounterVec
}

var _ interfaces.ILifecycleMetrics = (*lifecycleMetrics)(nil)

// NewLifecycleMetrics registers the job, quote, identity and assistant
// counters on registry.
func NewLifecycleMetrics(registry *prometheus.Registry) interfaces.ILifecycleMetrics {
	factory := promauto.With(registry)
	return &lifecycleMetrics{
		jobsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "portal_jobs_created_total",
			Help: "The total number of jobs created",
		}),
		jobsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "portal_jobs_deleted_total",
			Help: "The total number of jobs deleted",
		}),
		jobStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_job_status_changes_total",
			Help: "Job status changes by origin and target status",
		}, []string{"from", "to"}),
		quoteStatus: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_quote_status_total",
			Help: "Quotes entering each status",
		}, []string{"status"}),
		identityResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_identity_resolutions_total",
			Help: "Identity resolutions by the rule that matched",
		}, []string{"source"}),
		assistantFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_assistant_fallbacks_total",
			Help: "Assistant exchanges answered with a fallback message",
		}, []string{"reason"}),
	}
}

func (m *lifecycleMetrics) IncJobCreated() { m.jobsCreated.Inc() }

func (m *lifecycleMetrics) IncJobDeleted() { m.jobsDeleted.Inc() }

func (m *lifecycleMetrics) IncJobStatusChange(from, to string) {
	m.jobStatusChanges.WithLabelValues(from, to).Inc()
}

func (m *lifecycleMetrics) IncQuoteStatus(status string) {
	m.quoteStatus.WithLabelValues(status).Inc()
}

func (m *lifecycleMetrics) IncIdentityResolved(source string) {
	m.identityResolutions.WithLabelValues(source).Inc()
}

func (m *lifecycleMetrics) IncAssistantFallback(reason string) {
	m.assistantFallbacks.WithLabelValues(reason).Inc()
}
