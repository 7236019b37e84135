package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/wslaunch/pkg/template"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Registry is a thread-safe map from template identifier to the fingerprint
// of its last materialized specification.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]string
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		specs: make(map[string]string),
	}
}

// ShouldMaterialize reports whether spec differs from what was last
// recorded for identifier. When it does, the new fingerprint is recorded
// before returning true.
func (r *Registry) ShouldMaterialize(identifier string, spec *types.Spec) bool {
	return r.Record(identifier, template.Fingerprint(spec))
}

// Record stores fingerprint for identifier, returning false when it was
// already the recorded value.
func (r *Registry) Record(identifier, fingerprint string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.specs[identifier]; ok && cached == fingerprint {
		return false
	}
	r.specs[identifier] = fingerprint
	return true
}

// Lookup returns the recorded fingerprint for identifier
func (r *Registry) Lookup(identifier string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fingerprint, ok := r.specs[identifier]
	return fingerprint, ok
}

// Forget drops the entry for identifier so the next call materializes again
func (r *Registry) Forget(identifier string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.specs, identifier)
}

// List returns all recorded identifiers in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}

	sort.Strings(ids)
	return ids
}

// Count returns the number of recorded identifiers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.specs)
}
