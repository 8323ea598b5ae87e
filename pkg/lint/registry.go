package lint

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered lint rules. The rule set is a closed set
// fixed at build time; rules self-register during init().
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byCode: make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same code already exists, it is replaced.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCode[rule.Code()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by code or name. It tries code first.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byCode[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Rules returns all registered rules sorted by code for deterministic output.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.byCode))
	for _, rule := range r.byCode {
		result = append(result, rule)
	}

	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.Code(), b.Code())
	})

	return result
}

// RulesFor returns all rules applicable to a file kind, sorted by code.
func (r *Registry) RulesFor(kind FileKind) []Rule {
	var result []Rule
	for _, rule := range r.Rules() {
		if slices.Contains(rule.Kinds(), kind) {
			result = append(result, rule)
		}
	}
	return result
}

// Codes returns all registered rule codes in sorted order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		result = append(result, code)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
