package ecs

// Query returns every entity owning at least one component of each kind.
//
// Candidates are seeded from the first kind's bucket in storage order and
// filtered by each following kind, keeping their relative order. The result
// is never re-sorted, so order is inherited from kinds[0] and repeats exactly
// while the store is unchanged. An entity holding several components of
// kinds[0] appears once per component.
func (r *Registry) Query(kinds ...Kind) []Entity {
	if len(kinds) == 0 {
		return []Entity{}
	}
	seed, ok := r.buckets[kinds[0]]
	if !ok || seed.size() == 0 {
		return []Entity{}
	}

	candidates := make([]Entity, 0, seed.size())
	for _, c := range seed.items {
		candidates = append(candidates, c.Owner())
	}

	for _, kind := range kinds[1:] {
		b, ok := r.buckets[kind]
		if !ok || b.size() == 0 {
			return []Entity{}
		}
		present := b.owners()
		kept := candidates[:0]
		for _, e := range candidates {
			if present.Contains(uint32(e)) {
				kept = append(kept, e)
			}
		}
		candidates = kept
		if len(candidates) == 0 {
			return []Entity{}
		}
	}
	return candidates
}
