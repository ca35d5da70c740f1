package observe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathviz/observe"
)

func TestCheckpoint_NilsNeverCancel(t *testing.T) {
	assert.NoError(t, observe.Checkpoint(nil, nil))
	assert.NoError(t, observe.Checkpoint(context.Background(), observe.Never))
}

func TestCheckpoint_Canceller(t *testing.T) {
	err := observe.Checkpoint(context.Background(), observe.CancelFunc(func() bool { return true }))
	assert.ErrorIs(t, err, observe.ErrCancelled)
}

func TestCheckpoint_Context(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := observe.Checkpoint(ctx, nil)
	assert.ErrorIs(t, err, observe.ErrCancelled)
	assert.True(t, errors.Is(err, context.Canceled), "context cause must be preserved")
}

func TestAfterN(t *testing.T) {
	c := observe.AfterN(2)
	assert.False(t, c.PollCancelled())
	assert.False(t, c.PollCancelled())
	assert.True(t, c.PollCancelled())
	assert.True(t, c.PollCancelled())
}

func TestCounter_Forwards(t *testing.T) {
	inner := &observe.Counter{}
	outer := &observe.Counter{Next: inner}
	for i := 0; i < 3; i++ {
		outer.NotifyProgress()
	}
	assert.Equal(t, 3, outer.N)
	assert.Equal(t, 3, inner.N)

	observe.Nop.NotifyProgress() // must not panic
}
