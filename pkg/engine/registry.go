package engine

// Registry maps a host language identifier to the strategy that grows
// selections in that language family. A language with no registered
// strategy routes to the host's native grow/shrink behavior.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register binds a language identifier to a strategy, replacing any
// previous binding.
func (r *Registry) Register(language string, s Strategy) {
	r.strategies[language] = s
}

// Lookup returns the strategy for the language identifier.
// ok=false is the explicit unregistered case.
func (r *Registry) Lookup(language string) (Strategy, bool) {
	s, ok := r.strategies[language]
	return s, ok
}

// Languages returns all registered language identifiers.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.strategies))
	for lang := range r.strategies {
		out = append(out, lang)
	}
	return out
}
