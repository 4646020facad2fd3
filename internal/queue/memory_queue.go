// Package queue deletes orphaned poster files in the background, retrying
// failed deletions with exponential backoff.
package queue

import (
	"context"
	"sync"
)

// DeleteJob asks for one stored file to be removed.
type DeleteJob struct {
	FileName string
	// Attempts counts failed deletions so far.
	Attempts int
}

// MemoryQueue is a bounded in-memory job queue.
type MemoryQueue struct {
	jobs     chan DeleteJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan DeleteJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// The read lock is held for the whole send so Close cannot close the channel underneath it.
func (q *MemoryQueue) Enqueue(job DeleteJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job. Jobs still buffered when the queue is closed
// are handed out before ErrQueueClosed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (DeleteJob, error) {
	select {
	case <-ctx.Done():
		return DeleteJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return DeleteJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
