package ui

import (
	"fmt"
	"io"
	"testing"

	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"go.uber.org/mock/gomock"
)

func testLogger() logger.Logger {
	return logger.New(logger.Opts{Env: "test", Writer: io.Discard})
}

// runPending executes the next queued task, or the deferred callbacks when no
// task is queued, on the calling goroutine.
func runPending(t *testing.T, loop *Loop) {
	t.Helper()
	select {
	case fn := <-loop.tasks:
		loop.run(fn)
		loop.drain()
		return
	default:
	}
	if deferredLen(loop) == 0 {
		t.Fatal("nothing posted to the loop")
	}
	loop.drain()
}

func deferredLen(loop *Loop) int {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return len(loop.deferred)
}

type recordingRequester struct {
	images    []*media.Image
	documents []*media.Document
}

func (r *recordingRequester) RequestImage(img *media.Image)       { r.images = append(r.images, img) }
func (r *recordingRequester) RequestDocument(doc *media.Document) { r.documents = append(r.documents, doc) }

type sameItemMatcher struct {
	item layout.Item
}

// sameItem matches by identity; gomock.Eq would compare item contents.
func sameItem(item layout.Item) gomock.Matcher {
	return sameItemMatcher{item: item}
}

func (m sameItemMatcher) Matches(x any) bool {
	item, ok := x.(layout.Item)
	return ok && item == m.item
}

func (m sameItemMatcher) String() string {
	return fmt.Sprintf("is item %p", m.item)
}
