package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/pipeline"
)

// countingFiles fails every lookup, which stops ProcessFile at its first
// step; the counter still proves each job reached a worker.
type countingFiles struct {
	calls atomic.Int64
}

func (c *countingFiles) GetByID(context.Context, uuid.UUID) (*ent.SourceFile, error) {
	c.calls.Add(1)
	return nil, &ent.NotFoundError{}
}

func (c *countingFiles) GetByHash(context.Context, []byte) (*ent.SourceFile, error) {
	return nil, &ent.NotFoundError{}
}

func (c *countingFiles) Create(context.Context, string, string, string, int, []byte, time.Time) (*ent.SourceFile, error) {
	return nil, nil
}

func (c *countingFiles) UpsertByHash(context.Context, string, string, string, int, []byte, time.Time) (*ent.SourceFile, bool, error) {
	return nil, false, nil
}

func TestProcessorQueueDrainsAllJobs(t *testing.T) {
	files := &countingFiles{}
	proc := pipeline.NewProcessor(nil, files, nil, nil, nil, nil)
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8), WithProcessTimeout(time.Second))

	const n = 5
	for i := 0; i < n; i++ {
		err := q.Enqueue(context.Background(), Job{FileID: uuid.New(), SubmittedAt: time.Now()})
		require.NoError(t, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Equal(t, int64(n), files.calls.Load())
}

func TestProcessorQueueRejectsAfterShutdown(t *testing.T) {
	files := &countingFiles{}
	proc := pipeline.NewProcessor(nil, files, nil, nil, nil, nil)
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	q.Shutdown(context.Background())

	// a late enqueue is dropped, not delivered and not a panic
	err := q.Enqueue(context.Background(), Job{FileID: uuid.New(), SubmittedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(0), files.calls.Load())
}

func TestShutdownIsIdempotent(t *testing.T) {
	proc := pipeline.NewProcessor(nil, &countingFiles{}, nil, nil, nil, nil)
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
