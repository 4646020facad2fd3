package cache

import (
	"context"
	"time"
)

// Noop is used when Redis is not configured. It stores nothing and never
// counts past zero, so rate limits are not enforced.
type Noop struct{}

func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Incr(context.Context, string, time.Duration) (int64, error) { return 0, nil }

func (Noop) Ping(context.Context) error { return nil }
