package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amaumene/goflix/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls int32
}

func (c *countingRefresher) RefreshHighlights(ctx context.Context) int {
	atomic.AddInt32(&c.calls, 1)
	return 3
}

func TestStartRunsInitialRefresh(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewScheduler(refresher, "@every 1h", time.Second, utils.NewDiscardLogger())

	require.NoError(t, s.Start())
	s.Stop()

	assert.EqualValues(t, 1, atomic.LoadInt32(&refresher.calls))
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(&countingRefresher{}, "not a schedule", 0, utils.NewDiscardLogger())

	assert.Error(t, s.Start())
}
