package prommetrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recid"
	"github.com/hupe1980/recid/index"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg, WithNamespace("test"))
	require.NoError(t, err)

	c.RecordAdd(recid.KindName, nil)
	c.RecordAdd(recid.KindName, nil)
	c.RecordAdd(recid.KindFormID, errors.New("unsupported"))
	c.RecordSort(3, time.Millisecond)
	c.RecordQuery(2, time.Microsecond)
	c.RecordLoad(10, 2, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.adds.WithLabelValues("Name", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds.WithLabelValues("FormID", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sorts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.loadedRules))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.skippedRules))

	n, err := testutil.GatherAndCount(reg, "test_index_query_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}

func TestCollectorWithIndex(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	b := index.NewBuilder[string](index.WithMetrics(c))
	require.NoError(t, b.Add(recid.Wildcard("sword"), "swords"))
	require.Error(t, b.Add(recid.Classify("0x00012EB7"), "formid"))

	idx := b.Freeze()
	for range idx.FindAll(&recid.StaticRecord{EDID: "IronSword"}, recid.MaskAll, nil) {
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds.WithLabelValues("Name", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.adds.WithLabelValues("FormID", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sorts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.queries))
}
