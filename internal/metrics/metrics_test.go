package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/ledgerwise/internal/ledger"
	"github.com/mmynk/ledgerwise/internal/models"
)

func TestObserveAdmission(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveAdmission(nil)
	m.ObserveAdmission(nil)
	m.ObserveAdmission(ledger.Validate(models.Entry{Identifier: "123", Amount: 1}))
	m.ObserveAdmission(ledger.Validate(models.Entry{Identifier: "52998224725", Amount: 99999}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissions.WithLabelValues("invalid_format")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissions.WithLabelValues("out_of_range")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.admissions.WithLabelValues("invalid_amount")))
}

func TestObserveBatch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveBatch(3, nil)
	m.ObserveBatch(1, &ledger.BatchError{Index: 1, Err: ledger.ErrInvalidAmount})

	assert.Equal(t, 4.0, testutil.ToFloat64(m.admissions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissions.WithLabelValues("invalid_amount")))
}

func TestObserveRPC(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRPC("/ledgerwise.v1.LedgerService/GetBalances", "ok", 20*time.Millisecond)
	m.ObserveRPC("/ledgerwise.v1.LedgerService/GetBalances", "invalid_argument", time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.rpcDuration))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "accepted", Outcome(nil))
	assert.Equal(t, "invalid_checksum", Outcome(ledger.ErrInvalidChecksum))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
