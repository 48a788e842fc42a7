package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation(t *testing.T) {
	r := NewRecorder()

	r.RecordOperation("deposit", OutcomeSuccess)
	r.RecordOperation("deposit", OutcomeSuccess)
	r.RecordOperation("deposit", OutcomeRejected)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("deposit", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("deposit", OutcomeRejected)))
}

func TestObserveSave(t *testing.T) {
	r := NewRecorder()

	r.ObserveSave(time.Millisecond, nil)
	r.ObserveSave(time.Millisecond, errors.New("disk full"))

	assert.Equal(t, 2, testutil.CollectAndCount(r.saves))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.RecordOperation("deposit", OutcomeSuccess)
		r.ObserveSave(time.Millisecond, nil)
	})
}

func TestHandler(t *testing.T) {
	r := NewRecorder()
	r.RecordOperation("createAccount", OutcomeSuccess)

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `simple_bank_operations_total{operation="createAccount",outcome="success"} 1`)
}
