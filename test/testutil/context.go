package testutil

import (
	"context"
	"testing"
	"time"
)

// Context returns a context bounded to 10s and cancelled when the test ends.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
