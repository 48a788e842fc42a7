package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestConfigure(t *testing.T) {
	logger := SetupLogging()

	require.NoError(t, Configure(logger, "debug", ""))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	assert.Error(t, Configure(logger, "loud", ""))
}

func TestConfigure_File(t *testing.T) {
	logger := SetupLogging()
	path := filepath.Join(t.TempDir(), "bank.log")

	require.NoError(t, Configure(logger, "info", path))
	assert.IsType(t, &lumberjack.Logger{}, logger.Out)
}

func TestGetLogData(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	assert.Nil(t, GetLogData(context.Background()))
	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestLogData_Log(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("accountCount", 3)
	logData.AddTiming("saveMs")()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Data["accountCount"])
	assert.Contains(t, entry.Data, "saveMs")
}

func TestMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var seen *LogData
	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seen = GetLogData(req.Context())
		seen.AddData("accountNumber", "aB1!2c3")
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/accounts", nil))

	require.NotNil(t, seen)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Handler.Request.Complete", entry.Message)
	assert.Equal(t, http.StatusCreated, entry.Data["status"])
	assert.Equal(t, "aB1!2c3", entry.Data["accountNumber"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["requestID"])
}

func TestMiddleware_KeepsRequestID(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := test.NewNullLogger()
	wrapped := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("nope")
	})

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Handler.Status.Error", entry.Message)
}
