package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSync(t *testing.T) {
	runsBefore := testutil.ToFloat64(SyncRunsTotal.WithLabelValues(OutcomeSuccess))
	syncedBefore := testutil.ToFloat64(SyncAccountsTotal.WithLabelValues(OutcomeSuccess))
	failedBefore := testutil.ToFloat64(SyncAccountsTotal.WithLabelValues(OutcomeError))

	RecordSync(OutcomeSuccess, 3, 1, 2*time.Second)

	assert.Equal(t, runsBefore+1, testutil.ToFloat64(SyncRunsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, syncedBefore+3, testutil.ToFloat64(SyncAccountsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(SyncAccountsTotal.WithLabelValues(OutcomeError)))
}

func TestRecordControlAction(t *testing.T) {
	before := testutil.ToFloat64(ControlActionsTotal.WithLabelValues("pause_all_campaigns", OutcomeError))

	RecordControlAction("pause_all_campaigns", OutcomeError)

	assert.Equal(t, before+1, testutil.ToFloat64(ControlActionsTotal.WithLabelValues("pause_all_campaigns", OutcomeError)))
}

func TestObserveAdPlatformCall(t *testing.T) {
	ObserveAdPlatformCall("list_accounts", "simulation", OutcomeSuccess, time.Now().Add(-time.Second))

	assert.GreaterOrEqual(t, testutil.CollectAndCount(AdPlatformRequestDuration, "adplatform_request_duration_seconds"), 1)
}
