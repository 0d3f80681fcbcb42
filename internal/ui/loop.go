// Package ui hosts the single thread that owns every layout item and media
// handle, together with the collaborators the layout core paints through.
package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

var ErrLoopStopped = errors.New("ui loop stopped")

const queueSize = 256

// Loop runs posted callbacks one at a time on a single goroutine.
type Loop struct {
	tasks  chan func()
	done   chan struct{}
	once   sync.Once
	logger logger.Logger

	// deferred is unbounded so code running on the loop never waits on itself.
	mu       sync.Mutex
	deferred []func()
	wake     chan struct{}
}

func NewLoop(log logger.Logger) *Loop {
	return &Loop{
		tasks:  make(chan func(), queueSize),
		done:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
		logger: log.WithComponent("ui"),
	}
}

// Post schedules fn and reports false once the loop is stopped.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case <-l.done:
		return false
	case l.tasks <- fn:
		return true
	}
}

// Defer queues fn to run once the current task returns. Unlike Post it never
// blocks, so tasks already running on the loop schedule follow-up work with it.
func (l *Loop) Defer(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	l.mu.Lock()
	l.deferred = append(l.deferred, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Call runs fn on the loop and waits for it to return.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopStopped
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until ctx is cancelled or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case fn := <-l.tasks:
			l.run(fn)
			l.drain()
		case <-l.wake:
			l.drain()
		}
	}
}

// drain runs deferred callbacks, including ones they defer themselves.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		batch := l.deferred
		l.deferred = nil
		l.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			l.run(fn)
		}
	}
}

func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *Loop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Recovered from panic in ui task", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}
