// Package engine wires strategies, the growth computation, and the
// selection history into the two user-facing operations: Grow and
// Shrink. The engine never applies selections itself; it returns an
// Action telling the host what to do.
package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/structsel/pkg/selection"
)

// ActionKind classifies what the host should do after an operation.
type ActionKind int

const (
	// ActionNone leaves the current selections untouched.
	ActionNone ActionKind = iota

	// ActionApply replaces the host's selections with Action.Selections.
	ActionApply

	// ActionNative defers to the host's own built-in grow or shrink.
	ActionNative
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionApply:
		return "apply"
	case ActionNative:
		return "native"
	default:
		return "none"
	}
}

// Action is the outcome of a Grow or Shrink operation.
type Action struct {
	Kind       ActionKind
	Selections selection.Set
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns the selection history for one editing session and routes
// operations through the strategy registry.
//
// Engine is single-threaded: the host delivers command invocations and
// selection-change events from one goroutine.
type Engine struct {
	registry *Registry
	history  *selection.History
	logger   *log.Logger

	// applying is the one-shot flag distinguishing the engine's own
	// apply from external selection changes: set immediately before an
	// ActionApply is handed to the host, cleared by the very next
	// observed change event.
	applying bool
}

// New creates an engine over the registry.
func New(registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		history:  selection.NewHistory(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Grow computes the next selection set for the document. The prior set
// is recorded in history only when growth produced something to apply.
// With no strategy registered for the document's language the host's
// native grow runs instead; with an empty growth result there is
// nothing to do and current selections stay as they are.
func (e *Engine) Grow(ctx context.Context, doc Document, current selection.Set) (Action, error) {
	strat, ok := e.registry.Lookup(doc.Language)
	if !ok {
		e.logger.Debug("no strategy for language, deferring to host",
			"language", doc.Language)
		return Action{Kind: ActionNative}, nil
	}

	grown, err := strat.Grow(ctx, doc, current.Spans())
	if err != nil {
		return Action{}, fmt.Errorf("%s grow: %w", strat.Name(), err)
	}
	if len(grown) == 0 {
		return Action{Kind: ActionNone}, nil
	}

	next := selection.FromSpans(grown)
	if next.Equal(current) {
		return Action{Kind: ActionNone}, nil
	}

	e.history.Record(current)
	e.markApplying()
	return Action{Kind: ActionApply, Selections: next}, nil
}

// Shrink pops the most recent pre-growth selection set. An empty
// history defers to the host's native shrink.
func (e *Engine) Shrink(_ context.Context, doc Document, _ selection.Set) (Action, error) {
	prev, ok := e.history.Pop()
	if !ok {
		e.logger.Debug("empty history, deferring to host shrink",
			"language", doc.Language)
		return Action{Kind: ActionNative}, nil
	}

	e.markApplying()
	return Action{Kind: ActionApply, Selections: prev}, nil
}

// ObserveSelectionChange must be called for every selection-change
// event the host reports. A change caused by the engine's own apply
// consumes the one-shot flag; any other change invalidates history so
// a later shrink can never land on a stale entry.
func (e *Engine) ObserveSelectionChange() {
	if e.applying {
		e.applying = false
		return
	}
	e.history.Invalidate()
}

// HistoryLen reports how many shrink steps are currently available.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

func (e *Engine) markApplying() {
	e.applying = true
}
