package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	storagemocks "movieflix/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingDeleter fails each file a configured number of times before succeeding.
type recordingDeleter struct {
	mu       sync.Mutex
	failures map[string]int
	calls    map[string]int
	deleted  map[string]bool
}

func newRecordingDeleter() *recordingDeleter {
	return &recordingDeleter{
		failures: make(map[string]int),
		calls:    make(map[string]int),
		deleted:  make(map[string]bool),
	}
}

func (d *recordingDeleter) Delete(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls[name]++
	if d.failures[name] > 0 {
		d.failures[name]--
		return errors.New("storage unavailable")
	}
	d.deleted[name] = true
	return nil
}

func (d *recordingDeleter) Calls(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[name]
}

func (d *recordingDeleter) Deleted(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleted[name]
}

func fastConfig() ProcessorConfig {
	return ProcessorConfig{Workers: 2, MaxRetries: 3, RetryDelay: 10 * time.Millisecond}
}

func TestNewProcessor(t *testing.T) {
	t.Run("applies defaults for zero config", func(t *testing.T) {
		q := NewMemoryQueue(10)
		deleter := newRecordingDeleter()

		p := NewProcessor(q, deleter, ProcessorConfig{})

		assert.Equal(t, q, p.queue)
		assert.Equal(t, DefaultWorkers, p.workerCount)
		assert.Equal(t, DefaultMaxRetries, p.maxRetries)
		assert.Equal(t, DefaultRetryDelay, p.retryDelay)
	})

	t.Run("keeps explicit config", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), newRecordingDeleter(), fastConfig())

		assert.Equal(t, 2, p.workerCount)
		assert.Equal(t, 3, p.maxRetries)
		assert.Equal(t, 10*time.Millisecond, p.retryDelay)
	})
}

func TestProcessor_StartStop(t *testing.T) {
	t.Run("starts and stops cleanly", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), newRecordingDeleter(), fastConfig())
		p.Start(context.Background())

		done := make(chan struct{})
		go func() {
			p.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), newRecordingDeleter(), fastConfig())
		p.Start(context.Background())

		p.Stop()
		p.Stop()
	})

	t.Run("workers exit when context is cancelled", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), newRecordingDeleter(), fastConfig())
		ctx, cancel := context.WithCancel(context.Background())
		p.Start(ctx)

		cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("workers did not exit")
		}
	})

	t.Run("workers exit when context deadline passes", func(t *testing.T) {
		p := NewProcessor(NewMemoryQueue(10), newRecordingDeleter(), fastConfig())
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		p.Start(ctx)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("workers did not exit after deadline")
		}
	})
}

func TestProcessor_DeletesPosters(t *testing.T) {
	t.Run("deletes through storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := storagemocks.NewMockStorage(ctrl)
		deleted := make(chan string, 1)
		store.EXPECT().
			Delete(gomock.Any(), "old.png").
			DoAndReturn(func(_ context.Context, name string) error {
				deleted <- name
				return nil
			})

		q := NewMemoryQueue(10)
		p := NewProcessor(q, store, fastConfig())
		p.Start(context.Background())
		defer p.Stop()

		assert.NoError(t, q.Enqueue(DeleteJob{FileName: "old.png"}))

		select {
		case name := <-deleted:
			assert.Equal(t, "old.png", name)
		case <-time.After(2 * time.Second):
			t.Fatal("poster was not deleted")
		}
	})

	t.Run("retries until delete succeeds", func(t *testing.T) {
		deleter := newRecordingDeleter()
		deleter.failures["flaky.png"] = 2

		q := NewMemoryQueue(10)
		p := NewProcessor(q, deleter, fastConfig())
		p.Start(context.Background())
		defer p.Stop()

		assert.NoError(t, q.Enqueue(DeleteJob{FileName: "flaky.png"}))

		assert.Eventually(t, func() bool { return deleter.Deleted("flaky.png") }, 2*time.Second, 5*time.Millisecond)
		assert.Equal(t, 3, deleter.Calls("flaky.png"))
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		deleter := newRecordingDeleter()
		deleter.failures["stuck.png"] = 100

		q := NewMemoryQueue(10)
		p := NewProcessor(q, deleter, fastConfig())
		p.Start(context.Background())
		defer p.Stop()

		assert.NoError(t, q.Enqueue(DeleteJob{FileName: "stuck.png"}))

		assert.Eventually(t, func() bool { return deleter.Calls("stuck.png") == 3 }, 2*time.Second, 5*time.Millisecond)
		// Backoff after the last attempt would be 40ms; nothing else may arrive.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, 3, deleter.Calls("stuck.png"))
		assert.False(t, deleter.Deleted("stuck.png"))
	})

	t.Run("stop abandons pending retry", func(t *testing.T) {
		deleter := newRecordingDeleter()
		deleter.failures["late.png"] = 1

		q := NewMemoryQueue(10)
		p := NewProcessor(q, deleter, ProcessorConfig{Workers: 1, MaxRetries: 3, RetryDelay: time.Hour})
		p.Start(context.Background())

		assert.NoError(t, q.Enqueue(DeleteJob{FileName: "late.png"}))
		assert.Eventually(t, func() bool { return deleter.Calls("late.png") == 1 }, 2*time.Second, 5*time.Millisecond)

		done := make(chan struct{})
		go func() {
			p.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stop() timed out")
		}
		assert.False(t, deleter.Deleted("late.png"))
	})
}
