package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncrementExport(t *testing.T) {
	before := testutil.ToFloat64(ExportsTotal.WithLabelValues("map_pdf"))
	IncrementExport("map_pdf")
	IncrementExport("map_pdf")
	assert.Equal(t, before+2, testutil.ToFloat64(ExportsTotal.WithLabelValues("map_pdf")))
}

func TestIncrementAdminMutation(t *testing.T) {
	before := testutil.ToFloat64(AdminMutationsTotal.WithLabelValues("user", "create"))
	IncrementAdminMutation("user", "create")
	assert.Equal(t, before+1, testutil.ToFloat64(AdminMutationsTotal.WithLabelValues("user", "create")))
}
