package cronrunner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type countingPruner struct {
	calls atomic.Int32
	err   error
}

func (p *countingPruner) PruneOrphans(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	return 3, p.err
}

func TestRunnerRunsJobs(t *testing.T) {
	r := New(zap.NewNop(), context.Background())
	var hits atomic.Int32
	_, err := r.Add("@every 1s", func(ctx context.Context) { hits.Add(1) })
	require.NoError(t, err)
	assert.Equal(t, 1, r.Entries())

	r.Start()
	require.Eventually(t, func() bool { return hits.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	r.Stop()
}

func TestRunnerRejectsBadSpec(t *testing.T) {
	r := New(nil, nil)
	_, err := r.Add("every minute", func(context.Context) {})
	assert.Error(t, err)
}

func TestRunnerSkipsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(nil, ctx)
	var hits atomic.Int32
	_, err := r.Add("@every 1s", func(context.Context) { hits.Add(1) })
	require.NoError(t, err)
	cancel()

	r.Start()
	time.Sleep(1500 * time.Millisecond)
	r.Stop()
	assert.Zero(t, hits.Load())
}

func TestSchedule(t *testing.T) {
	r := New(nil, context.Background())
	p := &countingPruner{}

	require.NoError(t, Schedule(r, "  ", p, nil))
	assert.Zero(t, r.Entries())
	require.NoError(t, Schedule(r, "0 0 3 * * *", nil, nil))
	assert.Zero(t, r.Entries())

	require.NoError(t, Schedule(r, "0 0 3 * * *", p, nil))
	assert.Equal(t, 1, r.Entries())
	assert.Error(t, Schedule(r, "0 3 * *", p, nil))
}

func TestPruneTagsJobLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := &countingPruner{err: errors.New("db down")}

	PruneTagsJob(p, zap.New(core))(context.Background())

	assert.EqualValues(t, 1, p.calls.Load())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "tag prune failed", logs.All()[0].Message)
}
