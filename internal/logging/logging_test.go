package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := SetupLogging("debug")
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	fields := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &fields))
	return fields
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("not-a-level").Level)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", "abc")
	stop := logData.AddTiming("persistMs")
	stop()
	logData.Log().Info("done")

	fields := lastLine(t, buf)
	assert.Equal(t, "abc", fields["accountID"])
	assert.Contains(t, fields, "persistMs")
	assert.Equal(t, "info", fields["loglevel"])
}

func TestLogData_AddToExistingTiming(t *testing.T) {
	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddToExistingTiming("total")()
	logData.AddToExistingTiming("total")()

	assert.Contains(t, logData.timeItems, "total")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logger, _ := newBufferedLogger()
	logData := NewLogData(logger)
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()
	wrapped := LoggingWrapper("Status", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("boom")
	})

	w := httptest.NewRecorder()
	wrapped(w, httptest.NewRequest(http.MethodPost, "/status", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Error", fields["msg"])
	assert.Equal(t, "boom", fields["error"])
}
