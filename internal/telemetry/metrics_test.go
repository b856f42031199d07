package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(ForumReportsTotal.WithLabelValues("post", "duplicate"))
	ForumReportsTotal.WithLabelValues("post", "duplicate").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ForumReportsTotal.WithLabelValues("post", "duplicate")))

	downloads := testutil.ToFloat64(AttachmentDownloadsTotal)
	AttachmentDownloadsTotal.Inc()
	assert.Equal(t, downloads+1, testutil.ToFloat64(AttachmentDownloadsTotal))
}

func TestHTTPMetricsRegistered(t *testing.T) {
	HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/news", "200").Inc()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestsTotal), 1)
}
