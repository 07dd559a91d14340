package impl

import (
	"context"
	"testing"
	"time"

	"geoalert/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBestEffort(t *testing.T) {
	t.Run("success keeps value", func(t *testing.T) {
		out := bestEffort(context.Background(), time.Second, 0, func(context.Context) (int, error) { return 7, nil })

		assert.False(t, out.Degraded())
		assert.Equal(t, 7, out.Value)
	})

	t.Run("failure falls back", func(t *testing.T) {
		out := bestEffort(context.Background(), time.Second, -1, func(context.Context) (int, error) { return 7, errors.New("boom") })

		assert.True(t, out.Degraded())
		assert.Equal(t, -1, out.Value)
	})

	t.Run("detached from caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out := bestEffort(ctx, time.Second, false, func(stageCtx context.Context) (bool, error) {
			return stageCtx.Err() == nil, stageCtx.Err()
		})
		assert.True(t, out.Value)
	})

	t.Run("bounded by timeout", func(t *testing.T) {
		out := bestEffort(context.Background(), 10*time.Millisecond, "fallback", func(stageCtx context.Context) (string, error) {
			<-stageCtx.Done()

			return "late", stageCtx.Err()
		})
		assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
		assert.Equal(t, "fallback", out.Value)
	})
}
