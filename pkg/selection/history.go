package selection

// History records the selection sets that preceded each growth step,
// newest last. Shrink pops the most recent entry. Any externally
// originated selection change invalidates the whole stack, so shrink
// can never land on a stale entry.
//
// History is not safe for concurrent use; the engine mutates it from a
// single goroutine.
type History struct {
	stack []Set
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record pushes the set unless it equals the current top, which avoids
// duplicate entries when growth is invoked repeatedly without
// intervening external changes. The set is cloned so later host-side
// mutation cannot corrupt the stack.
func (h *History) Record(set Set) {
	if len(h.stack) > 0 && h.stack[len(h.stack)-1].Equal(set) {
		return
	}
	h.stack = append(h.stack, set.Clone())
}

// Pop removes and returns the most recent entry.
// Returns ok=false on an empty stack.
func (h *History) Pop() (Set, bool) {
	if len(h.stack) == 0 {
		return nil, false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Invalidate clears the entire stack.
func (h *History) Invalidate() {
	h.stack = nil
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.stack)
}
