// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(context.Context) error {
	m.runCount.Add(1)
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := New(0, w1, w2, w3)
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New(0).Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Add(t *testing.T) {
	w := &countingWorker{}
	ws := New(1)
	ws.Add(w)

	require.NoError(t, ws.Run(context.Background()))
	assert.EqualValues(t, 1, w.runCount.Load())
}

func TestWorkers_Run_ReturnsErrorAndCancels(t *testing.T) {
	cancelled := make(chan struct{})

	ws := New(0,
		Func(func(context.Context) error { return assert.AnError }),
		Func(func(ctx context.Context) error {
			<-ctx.Done()
			close(cancelled)
			return nil
		}),
	)

	err := ws.Run(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	<-cancelled
}

func TestWorkers_Run_RespectsLimit(t *testing.T) {
	var running, peak atomic.Int32
	job := Func(func(context.Context) error {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
		return nil
	})

	require.NoError(t, New(2, job, job, job, job, job).Run(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
