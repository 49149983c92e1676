package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalContext_Lifecycle(t *testing.T) {
	sc := NewSignalContext(context.Background())

	assert.NoError(t, sc.Err())
	assert.Nil(t, sc.Signal())

	sc.Cancel()
	assert.ErrorIs(t, sc.Err(), context.Canceled)
	assert.Nil(t, sc.Signal(), "a plain cancel records no signal")
}

func TestSignalContext_CapturesSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	sc.sigCh <- os.Interrupt

	select {
	case <-sc.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled by the signal")
	}
	assert.Eventually(t, func() bool { return sc.Signal() == os.Interrupt }, time.Second, time.Millisecond)
}

func TestSignalContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := NewSignalContext(parent)

	cancel()
	assert.ErrorIs(t, sc.Err(), context.Canceled)
}

func TestHandleExecutionError(t *testing.T) {
	boom := errors.New("boom")

	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(fmt.Errorf("worker: %w", context.Canceled)))
	assert.ErrorIs(t, handleExecutionError(boom), boom)
}
