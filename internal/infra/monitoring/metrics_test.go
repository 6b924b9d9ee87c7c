//go:build unit

package monitoring_test

import (
	"testing"
	"time"

	"coffee-verifier/internal/infra/monitoring"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Counts(t *testing.T) {
	r := monitoring.NewRecorder()

	submitted := testutil.ToFloat64(monitoring.PromRequestsSubmitted.WithLabelValues("inventory"))
	resolved := testutil.ToFloat64(monitoring.PromResolutions.WithLabelValues("failed", "sweep"))
	synced := testutil.ToFloat64(monitoring.PromSyncs.WithLabelValues("created"))

	r.RequestSubmitted("inventory")
	r.RequestResolved("failed", "sweep")
	r.SyncCompleted("created")
	r.OracleCall("ok", 120*time.Millisecond)

	assert.Equal(t, submitted+1, testutil.ToFloat64(monitoring.PromRequestsSubmitted.WithLabelValues("inventory")))
	assert.Equal(t, resolved+1, testutil.ToFloat64(monitoring.PromResolutions.WithLabelValues("failed", "sweep")))
	assert.Equal(t, synced+1, testutil.ToFloat64(monitoring.PromSyncs.WithLabelValues("created")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(monitoring.PromOracleCallDuration), 1)
}

func TestRecorder_NoopAndNil(t *testing.T) {
	before := testutil.ToFloat64(monitoring.PromSyncs.WithLabelValues("rejected"))

	monitoring.NewNoopRecorder().SyncCompleted("rejected")
	var nilRecorder *monitoring.Recorder
	nilRecorder.SyncCompleted("rejected")

	assert.Equal(t, before, testutil.ToFloat64(monitoring.PromSyncs.WithLabelValues("rejected")))
}
