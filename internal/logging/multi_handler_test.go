package logging_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/candemir/vitalis-backend/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures records at or above its minimum level.
type recordingHandler struct {
	min      slog.Level
	err      error
	messages []string
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.messages = append(h.messages, record.Message)
	return h.err
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(_ string) slog.Handler      { return h }

func record(level slog.Level, msg string) slog.Record {
	return slog.NewRecord(time.Now(), level, msg, 0)
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	stdout := &recordingHandler{min: slog.LevelInfo}
	db := &recordingHandler{min: slog.LevelError}
	m := logging.NewMultiHandler(stdout, db)

	ctx := context.Background()
	require.NoError(t, m.Handle(ctx, record(slog.LevelInfo, "boot")))
	require.NoError(t, m.Handle(ctx, record(slog.LevelError, "boom")))

	assert.Equal(t, []string{"boot", "boom"}, stdout.messages)
	assert.Equal(t, []string{"boom"}, db.messages)
}

func TestMultiHandler_EnabledIfAnyHandlerIs(t *testing.T) {
	m := logging.NewMultiHandler(
		&recordingHandler{min: slog.LevelWarn},
		&recordingHandler{min: slog.LevelError},
	)

	ctx := context.Background()
	assert.False(t, m.Enabled(ctx, slog.LevelInfo))
	assert.True(t, m.Enabled(ctx, slog.LevelWarn))
}

func TestMultiHandler_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	broken := &recordingHandler{min: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &recordingHandler{min: slog.LevelInfo}
	m := logging.NewMultiHandler(broken, healthy)

	err := m.Handle(context.Background(), record(slog.LevelError, "boom"))
	assert.Error(t, err)
	assert.Equal(t, []string{"boom"}, healthy.messages)
}
