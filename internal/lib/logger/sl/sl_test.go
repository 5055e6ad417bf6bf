package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Houeta/hrms-lite/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Warn("expected result:", sl.Err(assert.AnError))

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	attr := sl.Err(nil)

	assert.Equal(t, "error", attr.Key)
	assert.Empty(t, attr.Value.String())
}

func TestQuery(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Info("read", sl.Query(stringer("employee/list")))

	assert.Contains(t, logBuf.String(), "query=employee/list")
}
