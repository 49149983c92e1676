package demo

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_String(t *testing.T) {
	tests := []struct {
		name  string
		total uint64
		pos   uint64
		want  string
	}{
		{"empty", 1000, 0, "[          ]   0%\n0 / 1,000 items"},
		{"half", 1000, 500, "[*****     ]  50%\n500 / 1,000 items"},
		{"full", 1000, 1000, "[**********] 100%\n1,000 / 1,000 items"},
		{"overflow is clamped", 1000, 5000, "[**********] 100%\n1,000 / 1,000 items"},
		{"zero total", 0, 0, "[**********] 100%\n0 / 0 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(tt.total, 10)
			p.Add(tt.pos)
			assert.Equal(t, tt.want, ansi.Strip(p.String()))
		})
	}
}

func TestNewProgress_DefaultWidth(t *testing.T) {
	p := NewProgress(10, 0)
	bar, _, ok := strings.Cut(ansi.Strip(p.String()), "\n")
	require.True(t, ok)
	assert.Equal(t, "["+strings.Repeat(" ", DefaultBarWidth)+"]   0%", bar)
}

func TestRunProgress_FillsBar(t *testing.T) {
	p := NewProgress(100_003, 10)

	require.NoError(t, RunProgress(context.Background(), p, 4))
	assert.Equal(t, p.Total(), p.Pos())
}

func TestRunProgress_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProgress(1_000_000, 10)
	err := RunProgress(ctx, p, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, p.Pos(), p.Total())
}

func TestCounter(t *testing.T) {
	c := &Counter{}
	require.NoError(t, RunCounter(context.Background(), c, 1_234_567))

	assert.Equal(t, int64(1_234_567), c.Value())
	assert.Equal(t, "count: 1,234,567", c.String())
}

func TestRunCounter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Counter{}
	assert.ErrorIs(t, RunCounter(ctx, c, 10), context.Canceled)
	assert.Equal(t, int64(0), c.Value())
}
