package services

import (
	"context"
	"time"
)

// storeContext bounds one store round-trip. Zero disables the bound.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
