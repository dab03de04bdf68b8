package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsFailureWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	ctx := WithRequestID(context.Background(), "abc-123")

	func() (err error) {
		defer Time(ctx, "chart.compute")(&err)
		return errors.New("boom")
	}()

	entries := logs.FilterMessage("op failed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "abc-123", fields["req_id"])
	assert.Equal(t, "chart.compute", fields["op"])
	assert.Equal(t, "boom", fields["error"])
}

func TestTimeLogsSuccessAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	func() (err error) {
		defer Time(context.Background(), "noop")(&err)
		return nil
	}()

	require.Equal(t, 1, logs.FilterMessage("op done").Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("info", false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
