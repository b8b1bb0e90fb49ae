package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewLifecycleMetrics(registry)

	m.IncJobCreated()
	m.IncJobCreated()
	m.IncJobStatusChange("COMPLETED", "PENDING")
	m.IncQuoteStatus("PAID")
	m.IncIdentityResolved("invite")
	m.IncAssistantFallback("empty")

	lm := m.(*lifecycleMetrics)
	assert.Equal(t, 2.0, testutil.ToFloat64(lm.jobsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(lm.jobsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(lm.jobStatusChanges.WithLabelValues("COMPLETED", "PENDING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(lm.quoteStatus.WithLabelValues("PAID")))

	families, err := registry.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["portal_identity_resolutions_total"])
	assert.True(t, names["portal_assistant_fallbacks_total"])
}
