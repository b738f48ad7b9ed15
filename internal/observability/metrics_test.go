package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSessionCounters(t *testing.T) {
	issuedBefore := testutil.ToFloat64(sessionsIssued)
	expiredBefore := testutil.ToFloat64(sessionsExpired)
	revokedBefore := testutil.ToFloat64(sessionsRevoked)

	RecordSessionIssued()
	RecordSessionIssued()
	RecordSessionExpired()
	RecordSessionRevoked()

	require.Equal(t, issuedBefore+2, testutil.ToFloat64(sessionsIssued))
	require.Equal(t, expiredBefore+1, testutil.ToFloat64(sessionsExpired))
	require.Equal(t, revokedBefore+1, testutil.ToFloat64(sessionsRevoked))
}

func TestRecordRequestPartitionsByMethodAndStatus(t *testing.T) {
	counter := httpRequests.WithLabelValues("GET", "200")
	before := testutil.ToFloat64(counter)

	RecordRequest("GET", 200, 25*time.Millisecond)
	RecordRequest("GET", 200, 10*time.Millisecond)
	RecordRequest("POST", 404, 5*time.Millisecond)

	require.Equal(t, before+2, testutil.ToFloat64(counter))
	require.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues("POST", "404")))
}
