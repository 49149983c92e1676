package demo

import (
	"context"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// Counter is a single number rendered with thousands separators.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) String() string {
	return "count: " + humanize.Comma(c.n.Load())
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.n.Load()
}

// RunCounter increments c n times as fast as possible.
func RunCounter(ctx context.Context, c *Counter, n int64) error {
	for i := int64(0); i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		c.n.Add(1)
	}
	return nil
}
