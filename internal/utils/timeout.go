package utils

import (
	"context"
	"time"
)

const DefaultDBTimeout = 5 * time.Second

// WithDBTimeout caps a query at DefaultDBTimeout. A caller that already
// carries a tighter deadline keeps it.
func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < DefaultDBTimeout {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, DefaultDBTimeout)
}
