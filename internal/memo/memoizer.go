package memo

import (
	"github.com/google/uuid"

	"github.com/mesh-intelligence/circuits/pkg/gates"
)

// Memoizer wraps a lifted string algebra with a Store lookup. Every gate's
// structural identity is derived first; on a hit the underlying algebra is
// skipped and the cached value reused, so structurally identical subtrees
// are computed once per store lifetime. The lift itself stays cache-free;
// all deduplication lives here.
//
// Algebras are total functions and cannot return errors, so store failures
// are recorded on the Memoizer: a failed Get counts as a miss, a failed Put
// is dropped, and Err reports the first failure after the fold.
// Implements: prd003-memo-store R4.
type Memoizer struct {
	name   string
	store  Store
	lifted gates.Algebra[gates.Identified[string]]

	hits   int
	misses int
	err    error
}

// NewMemoizer wraps algebra, caching its per-node results in store under the
// given algebra name.
func NewMemoizer(name string, algebra gates.Algebra[string], store Store) *Memoizer {
	return &Memoizer{
		name:   name,
		store:  store,
		lifted: gates.Lift(algebra),
	}
}

// Algebra returns the caching algebra over identified values.
func (m *Memoizer) Algebra() gates.Algebra[gates.Identified[string]] {
	return func(g gates.Gate[gates.Identified[string]]) gates.Identified[string] {
		id := nodeID(g)

		value, ok, err := m.store.Get(m.name, id)
		if err != nil {
			m.record(err)
		} else if ok {
			m.hits++
			return gates.Identified[string]{Value: value, ID: id}
		}

		out := m.lifted(g)
		m.misses++
		if err := m.store.Put(m.name, out.ID, out.Value); err != nil {
			m.record(err)
		}
		return out
	}
}

// Hits reports how many gate applications were served from the store.
func (m *Memoizer) Hits() int { return m.hits }

// Misses reports how many gate applications ran the underlying algebra.
func (m *Memoizer) Misses() int { return m.misses }

// Err returns the first store failure observed, if any.
func (m *Memoizer) Err() error { return m.err }

func (m *Memoizer) record(err error) {
	if m.err == nil {
		m.err = err
	}
}

// nodeID computes the structural identity a lifted algebra would assign to
// g: the carried identity for inputs, the derived one otherwise.
func nodeID(g gates.Gate[gates.Identified[string]]) uuid.UUID {
	if g.Kind() == gates.KindInput {
		return g.First().ID
	}
	ops := g.Operands()
	ids := make([]uuid.UUID, len(ops))
	for i, op := range ops {
		ids[i] = op.ID
	}
	return gates.DeriveID(g.Kind(), ids...)
}
