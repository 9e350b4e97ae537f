package chip8

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type recordingRenderer struct {
	frames []Frame
	err    error
}

func (r *recordingRenderer) Render(frame Frame) error {
	r.frames = append(r.frames, frame)
	return r.err
}

func TestRunner_SelfJump(t *testing.T) {
	m := newTestMachine(t, 0x1200)
	runner := NewRunner(m, nil, RunnerOptions{})

	result, err := runner.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, HaltSelfJump, result)
	assert.Equal(t, uint64(1), runner.Cycles())
}

func TestRunner_RendersDirtyFrames(t *testing.T) {
	renderer := &recordingRenderer{}
	m := newTestMachine(t, 0xA300, 0xD001, 0x6000, 0xD001, 0x00E0, 0x120A)
	m.memory[0x300] = 0x80
	runner := NewRunner(m, renderer, RunnerOptions{})

	result, err := runner.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, HaltSelfJump, result)
	assert.Equal(t, uint64(6), runner.Cycles())

	assert.Len(t, renderer.frames, 3)
	assert.Equal(t, 1, renderer.frames[0].Lit())
	assert.Equal(t, 0, renderer.frames[1].Lit())
	assert.Equal(t, Frame{}, renderer.frames[2])
	assert.False(t, m.Display().Dirty())
}

func TestRunner_FatalHalt(t *testing.T) {
	m := newTestMachine(t, 0x6001, 0x00EE)
	runner := NewRunner(m, nil, RunnerOptions{})

	result, err := runner.Run(context.Background())
	assert.Equal(t, HaltStackUnderflow, result)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, uint64(1), runner.Cycles())
}

func TestRunner_CycleLimit(t *testing.T) {
	m := newTestMachine(t, 0x7001, 0x1200)
	runner := NewRunner(m, nil, RunnerOptions{MaxCycles: 10})

	result, err := runner.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, HaltCycleLimit, result)
	assert.Equal(t, uint64(10), runner.Cycles())
	assert.Equal(t, byte(5), m.V(0))
}

func TestRunner_Cancelled(t *testing.T) {
	m := newTestMachine(t, 0x7001, 0x1200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := NewRunner(m, nil, RunnerOptions{})

	result, err := runner.Run(ctx)
	assert.Equal(t, HaltCancelled, result)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, uint64(0), runner.Cycles())
}

func TestRunner_CancelledDuringDelay(t *testing.T) {
	m := newTestMachine(t, 0x7001, 0x1200)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	runner := NewRunner(m, nil, RunnerOptions{Delay: time.Hour})

	result, err := runner.Run(ctx)
	assert.Equal(t, HaltCancelled, result)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, uint64(1), runner.Cycles())
}

func TestRunner_Throttled(t *testing.T) {
	m := newTestMachine(t, 0x7001, 0x7001, 0x7001, 0x1206)
	runner := NewRunner(m, nil, RunnerOptions{Delay: 5 * time.Millisecond})

	start := time.Now()
	result, err := runner.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, HaltSelfJump, result)
	assert.True(t, time.Since(start) >= 15*time.Millisecond)
}

func TestRunner_RenderError(t *testing.T) {
	renderer := &recordingRenderer{err: errors.New("screen gone")}
	m := newTestMachine(t, 0x00E0, 0x1202)
	runner := NewRunner(m, renderer, RunnerOptions{})

	_, err := runner.Run(context.Background())
	assert.ErrorContains(t, err, "screen gone")
}
