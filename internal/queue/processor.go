package queue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Defaults for ProcessorConfig
const (
	DefaultWorkers    = 2
	DefaultMaxRetries = 3
	DefaultRetryDelay = 5 * time.Second
	// deleteTimeout bounds a single delete call.
	deleteTimeout = 10 * time.Second
)

// Deleter removes stored files. storage.Storage satisfies it.
type Deleter interface {
	Delete(ctx context.Context, name string) error
}

// ProcessorConfig tunes the worker pool. Zero values select the defaults.
type ProcessorConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// Processor drains a MemoryQueue with a fixed pool of workers.
type Processor struct {
	queue        *MemoryQueue
	deleter      Deleter
	workerCount  int
	maxRetries   int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a processor for the jobs in queue.
func NewProcessor(queue *MemoryQueue, deleter Deleter, cfg ProcessorConfig) *Processor {
	p := &Processor{
		queue:       queue,
		deleter:     deleter,
		workerCount: cfg.Workers,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
	if p.workerCount <= 0 {
		p.workerCount = DefaultWorkers
	}
	if p.maxRetries <= 0 {
		p.maxRetries = DefaultMaxRetries
	}
	if p.retryDelay <= 0 {
		p.retryDelay = DefaultRetryDelay
	}
	return p
}

// Start launches the workers. They run until Stop is called or ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Poster cleanup started with %d workers", p.workerCount)
}

// Stop closes the queue, lets workers drain what is buffered and waits for them.
// Pending retries are abandoned.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Poster cleanup stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job DeleteJob) {
	deleteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deleteTimeout)
	defer cancel()

	if err := p.deleter.Delete(deleteCtx, job.FileName); err != nil {
		log.Printf("Failed to delete poster %s (attempt %d): %v", job.FileName, job.Attempts+1, err)
		p.handleFailure(job)
		return
	}

	log.Printf("Deleted orphaned poster %s", job.FileName)
}

func (p *Processor) handleFailure(job DeleteJob) {
	job.Attempts++

	if job.Attempts >= p.maxRetries {
		log.Printf("Giving up on poster %s after %d attempts", job.FileName, job.Attempts)
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.Attempts-1))

	// Waits on shutdownCh rather than a context so Stop abandons the retry.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown before retrying poster %s, file left in storage", job.FileName)
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue poster %s: %v", job.FileName, err)
			}
		}
	}()
}
