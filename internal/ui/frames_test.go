package ui

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameScheduler_CoalescesRepaints(t *testing.T) {
	loop := NewLoop(testLogger())
	frames := NewFrameScheduler(loop, testLogger())
	factory := layout.NewFactory(layout.Opts{Repainter: frames})

	var painted []Frame
	frames.OnFrame(func(f Frame) { painted = append(painted, f) })

	first := factory.CreateLayout(&domain.Result{Type: domain.ResultTypeArticle}, false)
	second := factory.CreateLayout(&domain.Result{Type: domain.ResultTypeArticle}, false)
	first.SetPosition(0)
	second.SetPosition(1)

	first.Update()
	first.Update()
	second.Update()
	require.Equal(t, 1, deferredLen(loop))
	assert.Empty(t, loop.tasks)

	runPending(t, loop)
	require.Len(t, painted, 1)
	assert.Equal(t, uint64(1), painted[0].Seq)
	assert.Equal(t, []layout.Item{first, second}, painted[0].Items)

	second.Update()
	runPending(t, loop)
	require.Len(t, painted, 2)
	assert.Equal(t, []layout.Item{second}, painted[1].Items)
	assert.Equal(t, uint64(2), frames.Frames())
}

func TestFrameScheduler_DetachedItemsAreNotRepainted(t *testing.T) {
	loop := NewLoop(testLogger())
	frames := NewFrameScheduler(loop, testLogger())
	factory := layout.NewFactory(layout.Opts{Repainter: frames})

	item := factory.CreateLayout(&domain.Result{Type: domain.ResultTypeArticle}, false)
	item.Update()
	frames.RepaintItem(nil)

	assert.Empty(t, loop.tasks)
	assert.Zero(t, deferredLen(loop))
}

func TestFrameScheduler_StoppedLoop(t *testing.T) {
	loop := NewLoop(testLogger())
	frames := NewFrameScheduler(loop, testLogger())
	factory := layout.NewFactory(layout.Opts{Repainter: frames})
	item := factory.CreateLayout(&domain.Result{Type: domain.ResultTypeArticle}, false)
	item.SetPosition(0)

	loop.Stop()

	assert.NotPanics(t, item.Update)
	assert.Zero(t, frames.Frames())
}

func TestFrameScheduler_RepaintFromLoopWithFullQueue(t *testing.T) {
	loop := NewLoop(testLogger())
	frames := NewFrameScheduler(loop, testLogger())
	factory := layout.NewFactory(layout.Opts{Repainter: frames})
	item := factory.CreateLayout(&domain.Result{Type: domain.ResultTypeArticle}, false)
	item.SetPosition(0)

	var painted []Frame
	frames.OnFrame(func(f Frame) { painted = append(painted, f) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go loop.Run(ctx)
	defer loop.Stop()

	queued := 0
	require.NoError(t, loop.Call(ctx, func() {
		for queued < cap(loop.tasks) {
			loop.tasks <- func() {}
			queued++
		}
		item.Update()
	}), "a repaint requested on the loop must not wait for queue space")
	require.NoError(t, loop.Call(ctx, func() {}))

	assert.Equal(t, cap(loop.tasks), queued)
	require.Len(t, painted, 1)
	assert.Equal(t, []layout.Item{item}, painted[0].Items)
}
