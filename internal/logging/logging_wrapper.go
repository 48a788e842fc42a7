package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Infof("Handler.%v.Start", loggingName)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware gives every request its own LogData, tagged with a request id,
// and logs one line when the request completes.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				if id, err := uuid.NewV4(); err == nil {
					requestID = id.String()
				}
			}
			w.Header().Set(RequestIDHeader, requestID)

			logData := NewLogData(log)
			logData.AddData("requestID", requestID)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(rec, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			logData.AddData("status", rec.status)
			entry := logData.Log()
			if rec.status >= http.StatusInternalServerError {
				entry.Error("Handler.Request.Error")
				return
			}
			entry.Info("Handler.Request.Complete")
		})
	}
}
