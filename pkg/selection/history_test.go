package selection_test

import (
	"testing"

	"github.com/yaklabco/structsel/pkg/selection"
)

func TestHistoryPopOrder(t *testing.T) {
	t.Parallel()

	h := selection.NewHistory()
	first := selection.NewSet(selection.Cursor(5))
	second := selection.NewSet(selection.New(3, 8))

	h.Record(first)
	h.Record(second)

	got, ok := h.Pop()
	if !ok || !got.Equal(second) {
		t.Fatalf("first pop = %v, %v; want %v", got, ok, second)
	}

	got, ok = h.Pop()
	if !ok || !got.Equal(first) {
		t.Fatalf("second pop = %v, %v; want %v", got, ok, first)
	}

	if _, ok := h.Pop(); ok {
		t.Fatal("pop on empty stack should report ok=false")
	}
}

func TestHistoryRecordDedupesTop(t *testing.T) {
	t.Parallel()

	h := selection.NewHistory()
	set := selection.NewSet(selection.New(3, 8), selection.Cursor(12))

	h.Record(set)
	h.Record(set)
	h.Record(selection.NewSet(selection.New(3, 8), selection.Cursor(12)))

	if h.Len() != 1 {
		t.Fatalf("expected 1 entry after duplicate records, got %d", h.Len())
	}
}

func TestHistoryDedupeIsPairwiseAndOrdered(t *testing.T) {
	t.Parallel()

	h := selection.NewHistory()
	h.Record(selection.NewSet(selection.New(3, 8), selection.Cursor(12)))

	// Same spans, different order: not a duplicate.
	h.Record(selection.NewSet(selection.Cursor(12), selection.New(3, 8)))

	// Same span, reversed direction: not a duplicate either.
	h.Record(selection.NewSet(selection.New(8, 3), selection.Cursor(12)))

	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
}

func TestHistoryInvalidateClears(t *testing.T) {
	t.Parallel()

	h := selection.NewHistory()
	h.Record(selection.NewSet(selection.Cursor(1)))
	h.Record(selection.NewSet(selection.Cursor(2)))

	h.Invalidate()

	if h.Len() != 0 {
		t.Fatalf("expected empty stack after invalidate, got %d entries", h.Len())
	}
	if _, ok := h.Pop(); ok {
		t.Fatal("pop after invalidate should report ok=false")
	}
}

func TestHistoryRecordClones(t *testing.T) {
	t.Parallel()

	h := selection.NewHistory()
	set := selection.NewSet(selection.Cursor(5))
	h.Record(set)

	// Host-side mutation after recording must not corrupt the stack.
	set[0] = selection.Cursor(99)

	got, ok := h.Pop()
	if !ok || got[0] != selection.Cursor(5) {
		t.Fatalf("recorded entry was not isolated from caller mutation: %v", got)
	}
}
