package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordMutation(t *testing.T) {
	before := testutil.ToFloat64(EntityMutationsTotal.WithLabelValues(EntityPricing, OpUpdate))
	RecordMutation(EntityPricing, OpUpdate)
	after := testutil.ToFloat64(EntityMutationsTotal.WithLabelValues(EntityPricing, OpUpdate))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v", after-before)
	}
}
