package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestQueryHook_AfterQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("LogsQuery", func(t *testing.T) {
		var buf bytes.Buffer
		hook := NewQueryHook(newBufferLogger(&buf, slog.LevelDebug))

		event := &pg.QueryEvent{
			Query:     `DELETE FROM editions WHERE TRUE`,
			StartTime: time.Now().Add(-time.Millisecond),
			Err:       errors.New("relation missing"),
		}

		hookCtx, err := hook.BeforeQuery(ctx, event)
		require.NoError(t, err)
		require.NoError(t, hook.AfterQuery(hookCtx, event))

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, `msg="SQL query executed"`)
		assert.Contains(t, out, `query="DELETE FROM editions WHERE TRUE"`)
		assert.Contains(t, out, "duration=")
		assert.Contains(t, out, `error="relation missing"`)
	})

	t.Run("QuietAboveDebug", func(t *testing.T) {
		var buf bytes.Buffer
		hook := NewQueryHook(newBufferLogger(&buf, slog.LevelInfo))

		require.NoError(t, hook.AfterQuery(ctx, &pg.QueryEvent{Query: "SELECT 1", StartTime: time.Now()}))
		assert.Empty(t, buf.String())
	})

	t.Run("UnsupportedQuery", func(t *testing.T) {
		var buf bytes.Buffer
		hook := NewQueryHook(newBufferLogger(&buf, slog.LevelDebug))

		require.NoError(t, hook.AfterQuery(ctx, &pg.QueryEvent{Query: 42, StartTime: time.Now()}))
		assert.Contains(t, buf.String(), "failed to format query")
		assert.Contains(t, buf.String(), "can't append int")
	})
}
