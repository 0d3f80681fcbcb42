package ui

import (
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

// Frame lists the items repainted together, in request order.
type Frame struct {
	Seq   uint64
	Items []layout.Item
}

// FrameScheduler coalesces the repaints requested by one loop task into a
// single frame painted right after that task.
type FrameScheduler struct {
	loop    *Loop
	logger  logger.Logger
	dirty   map[layout.Item]struct{}
	order   []layout.Item
	pending bool
	seq     uint64
	onFrame func(Frame)
}

var _ layout.Repainter = (*FrameScheduler)(nil)

func NewFrameScheduler(loop *Loop, log logger.Logger) *FrameScheduler {
	return &FrameScheduler{
		loop:   loop,
		logger: log.WithComponent("frames"),
		dirty:  make(map[layout.Item]struct{}),
	}
}

// OnFrame installs the paint callback. Must be called on the loop.
func (s *FrameScheduler) OnFrame(fn func(Frame)) {
	s.onFrame = fn
}

func (s *FrameScheduler) RepaintItem(item layout.Item) {
	if item == nil {
		return
	}
	if _, ok := s.dirty[item]; ok {
		return
	}
	s.dirty[item] = struct{}{}
	s.order = append(s.order, item)

	if s.pending {
		return
	}
	s.pending = s.loop.Defer(s.flush)
}

// Frames is the number of frames painted so far.
func (s *FrameScheduler) Frames() uint64 {
	return s.seq
}

func (s *FrameScheduler) flush() {
	s.pending = false
	if len(s.order) == 0 {
		return
	}

	frame := Frame{Items: s.order}
	s.order = nil
	clear(s.dirty)
	s.seq++
	frame.Seq = s.seq

	s.logger.Debug("Frame painted", "seq", frame.Seq, "items", len(frame.Items))
	if s.onFrame != nil {
		s.onFrame(frame)
	}
}
