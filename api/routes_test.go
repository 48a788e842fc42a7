package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/metrics"
	"github.com/carson-networks/simple-bank/internal/operator"
	"github.com/carson-networks/simple-bank/internal/service"
	"github.com/carson-networks/simple-bank/internal/storage"
)

func newTestRest(t *testing.T) *Rest {
	t.Helper()
	logger, _ := test.NewNullLogger()
	recorder := metrics.NewRecorder()

	store := storage.NewAccountStore(filepath.Join(t.TempDir(), "data.json"), logger, recorder)
	require.NoError(t, store.Load())

	delegator := operator.NewOperatorDelegator(store, logger, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	return &Rest{
		Logger:  logger,
		Port:    "0",
		Store:   store,
		Service: service.NewService(store, delegator, recorder),
		Metrics: recorder,
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Status(t *testing.T) {
	router := newTestRest(t).Router()

	w := doJSON(t, router, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(logging.RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_KeepsIncomingRequestID(t *testing.T) {
	router := newTestRest(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(logging.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(logging.RequestIDHeader))
}

func TestRouter_AccountLifecycle(t *testing.T) {
	router := newTestRest(t).Router()

	w := doJSON(t, router, http.MethodPost, "/v1/accounts", map[string]any{
		"name": "Ada", "age": 30, "email": "ada@example.com", "pin": "1234",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		AccountInfo struct {
			AccountNumber string `json:"accountNumber"`
		} `json:"accountInfo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	number := created.AccountInfo.AccountNumber
	require.Len(t, number, 7)

	w = doJSON(t, router, http.MethodPost, "/v1/accounts/deposit", map[string]any{
		"accountNumber": number, "pin": "1234", "amount": "500",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"newBalance":"500.00"`)

	w = doJSON(t, router, http.MethodPost, "/v1/accounts/withdraw", map[string]any{
		"accountNumber": number, "pin": "1234", "amount": "600",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = doJSON(t, router, http.MethodGet, "/v1/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), number)

	w = doJSON(t, router, http.MethodPost, "/v1/accounts/delete", map[string]any{
		"accountNumber": number, "pin": "1234", "confirm": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/v1/accounts/details", map[string]any{
		"accountNumber": number, "pin": "1234",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRest(t).Router()

	doJSON(t, router, http.MethodPost, "/v1/accounts", map[string]any{
		"name": "Kid", "age": 12, "email": "", "pin": "1234",
	})

	w := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "simple_bank_operations_total"))
	assert.Contains(t, body, `outcome="rejected"`)
}
