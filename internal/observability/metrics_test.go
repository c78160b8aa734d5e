package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReport(t *testing.T) {
	before := testutil.ToFloat64(reportRequests.WithLabelValues(OutcomeEmpty))
	ObserveReport(OutcomeEmpty, 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(reportRequests.WithLabelValues(OutcomeEmpty)))
}

func TestRecordRowsLoaded(t *testing.T) {
	RecordRowsLoaded("tbl_daily_scores", 42)
	assert.Equal(t, 42.0, testutil.ToFloat64(rowsLoaded.WithLabelValues("tbl_daily_scores")))
}
