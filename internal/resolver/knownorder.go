package resolver

// KnownOrder is the canonical declaration order of known manifest ids. The
// zero value means no known-order constraint: every id ranks as unknown and
// ordering falls back to alphabetical.
type KnownOrder struct {
	ids  []string
	rank map[string]int
}

// NewKnownOrder builds a KnownOrder from ids in declaration order. Duplicate
// ids (case-insensitive) keep their first rank.
func NewKnownOrder(ids []string) KnownOrder {
	if len(ids) == 0 {
		return KnownOrder{}
	}
	k := KnownOrder{rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		key := fold(id)
		if _, ok := k.rank[key]; ok {
			continue
		}
		k.rank[key] = len(k.ids)
		k.ids = append(k.ids, id)
	}
	return k
}

// Present reports whether a known-order constraint exists.
func (k KnownOrder) Present() bool {
	return len(k.ids) > 0
}

// Rank returns the declaration rank of id, case-insensitively.
func (k KnownOrder) Rank(id string) (int, bool) {
	r, ok := k.rank[fold(id)]
	return r, ok
}

// IDs returns the known ids in declaration order.
func (k KnownOrder) IDs() []string {
	out := make([]string, len(k.ids))
	copy(out, k.ids)
	return out
}
