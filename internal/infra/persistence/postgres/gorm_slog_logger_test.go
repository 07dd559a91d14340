package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferedLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM slow query")
	assert.Contains(t, scoped.String(), "req-1")
}

func TestGormSlogLogger_SkipsExpectedErrors(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})
	sql := func() (string, int64) { return "INSERT", 0 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sql, gorm.ErrDuplicatedKey)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrInvalidField)
	assert.Contains(t, buf.String(), "GORM query failed")
}

func TestGormSlogLogger_LogModeSilent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, gorm.ErrInvalidField)
	assert.Empty(t, buf.String())
}
