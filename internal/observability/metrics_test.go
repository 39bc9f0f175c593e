package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLeadSubmissionsCounter(t *testing.T) {
	counter := LeadSubmissions().WithLabelValues("contact", "delivered")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	require.NotPanics(t, func() {
		RegisterMetrics()
		RegisterMetrics()
	})
	require.NotNil(t, HTTPRequests())
	require.NotNil(t, DispatchLogFailures())
}
