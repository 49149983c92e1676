package demo

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// DefaultBarWidth is the number of cells between the brackets of the bar.
const DefaultBarWidth = 80

// checkEvery is how many increments a worker does between context checks.
const checkEvery = 1 << 16

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Progress is a two-line progress bar over a fixed number of items.
type Progress struct {
	pos   atomic.Uint64
	total uint64
	width int
}

// NewProgress creates a bar for total items drawn width cells wide.
func NewProgress(total uint64, width int) *Progress {
	if width <= 0 {
		width = DefaultBarWidth
	}
	return &Progress{total: total, width: width}
}

// Add advances the bar by n items.
func (p *Progress) Add(n uint64) {
	p.pos.Add(n)
}

// Pos returns the number of completed items.
func (p *Progress) Pos() uint64 {
	return p.pos.Load()
}

// Total returns the number of items the bar counts up to.
func (p *Progress) Total() uint64 {
	return p.total
}

func (p *Progress) String() string {
	pos := min(p.pos.Load(), p.total)

	filled, pct := p.width, 100
	if p.total > 0 {
		filled = int(uint64(p.width) * pos / p.total)
		pct = int(100 * pos / p.total)
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(filledStyle.Render(strings.Repeat("*", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat(" ", p.width-filled)))
	b.WriteByte(']')
	fmt.Fprintf(&b, " %3d%%\n", pct)
	b.WriteString(countStyle.Render(humanize.Comma(int64(pos))))
	fmt.Fprintf(&b, " / %s items", humanize.Comma(int64(p.total)))
	return b.String()
}

// RunProgress fills p using the given number of workers, each incrementing
// one item at a time. It stops early when ctx is cancelled.
func RunProgress(ctx context.Context, p *Progress, workers int) error {
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	share := p.total / uint64(workers)
	for i := range workers {
		n := share
		if i == workers-1 {
			n = p.total - share*uint64(workers-1)
		}
		g.Go(func() error {
			for j := uint64(0); j < n; j++ {
				if j%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				p.Add(1)
			}
			return nil
		})
	}
	return g.Wait()
}
