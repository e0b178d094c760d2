package topological

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// CycleError lists the keys that could not be ordered because they sit on a
// cycle or depend on one.
type CycleError[K cmp.Ordered] struct {
	Keys []K
}

func (e *CycleError[K]) Error() string {
	parts := make([]string, 0, len(e.Keys))
	for _, key := range e.Keys {
		parts = append(parts, fmt.Sprint(key))
	}

	return fmt.Sprintf("cycle detected between %s", strings.Join(parts, ", "))
}

func sorted[K cmp.Ordered](set map[K]struct{}) []K {
	keys := slices.Collect(maps.Keys(set))
	slices.Sort(keys)
	return keys
}

// Sort orders keys so that every key comes after the keys it depends on.
// Dependencies outside of keys are ignored. Ties are broken by key order so
// the result is deterministic. When a cycle exists the keys that could be
// ordered are returned together with a *CycleError naming the rest.
func Sort[K cmp.Ordered](keys []K, depFunc func(K) []K) ([]K, error) {
	known := make(map[K]struct{}, len(keys))
	for _, key := range keys {
		known[key] = struct{}{}
	}

	pending := make(map[K]map[K]struct{})
	dependents := make(map[K]map[K]struct{})
	var ready []K

	for _, key := range sorted(known) {
		deps := make(map[K]struct{})
		for _, dep := range depFunc(key) {
			if _, ok := known[dep]; !ok {
				continue
			}

			deps[dep] = struct{}{}
			if dependents[dep] == nil {
				dependents[dep] = make(map[K]struct{})
			}
			dependents[dep][key] = struct{}{}
		}

		if len(deps) == 0 {
			ready = append(ready, key)
			continue
		}

		pending[key] = deps
	}

	list := make([]K, 0, len(known))
	for len(ready) > 0 {
		var key K
		key, ready = ready[0], ready[1:]
		list = append(list, key)

		for _, dependent := range sorted(dependents[key]) {
			delete(pending[dependent], key)
			if len(pending[dependent]) == 0 {
				delete(pending, dependent)
				ready = append(ready, dependent)
			}
		}
	}

	if len(pending) > 0 {
		remaining := make(map[K]struct{}, len(pending))
		for key := range pending {
			remaining[key] = struct{}{}
		}

		return list, &CycleError[K]{Keys: sorted(remaining)}
	}

	return list, nil
}
