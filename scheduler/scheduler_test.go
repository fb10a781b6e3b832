package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NatLabRockies/routee-compass-go/scheduler"
)

type ctxAwareJob struct {
	cancel context.CancelFunc
}

func (j ctxAwareJob) Weight() float64 { return 1 }
func (j ctxAwareJob) Run(ctx context.Context) (int, error) {
	if j.cancel != nil {
		j.cancel()
	}
	return 0, nil
}

// TestRunPropagatesContextCancellation verifies that a cancellation (distinct
// from a per-query failure) aborts the batch rather than being absorbed into
// an Outcome, per spec §7's propagation policy distinguishing fatal setup
// errors from per-query ones.
func TestRunPropagatesContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	jobs := make([]scheduler.Job[int], 0, 20)
	jobs = append(jobs, ctxAwareJob{cancel: cancel})
	for i := 0; i < 19; i++ {
		jobs = append(jobs, ctxAwareJob{})
	}

	_, err := scheduler.Run(ctx, jobs, 1)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmptyJobsReturnsEmptyOutcomes(t *testing.T) {
	outcomes, err := scheduler.Run[int](context.Background(), nil, 4)
	assert.NoError(t, err)
	assert.Empty(t, outcomes)
}
