package queue

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks movieflix/internal/queue Queue

var (
	// ErrQueueFull is returned when the queue is at capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned when trying to use a closed queue.
	ErrQueueClosed = errors.New("queue is closed")
)

// Queue holds pending poster deletions.
type Queue interface {
	// Enqueue adds a job without blocking.
	Enqueue(job DeleteJob) error
	// Dequeue removes and returns the next job, blocking until one is available.
	Dequeue(ctx context.Context) (DeleteJob, error)
	Close()
	Len() int
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)
