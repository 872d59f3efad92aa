package gates

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Identified pairs a payload with a structural identity. Fresh identities
// originate at inputs (see Minter); interior identities are derived from
// child identities by DeriveID and never depend on payload values.
// Implements: prd002-structural-identity R1.
type Identified[A any] struct {
	Value A
	ID    uuid.UUID
}

// String renders the payload with a short identity suffix, e.g. "true#3f2a".
func (i Identified[A]) String() string {
	return fmt.Sprintf("%v#%s", i.Value, i.ID.String()[:4])
}

// Minter mints fresh random input identities from an explicitly injected
// randomness source. Passing a deterministic reader makes identity
// generation reproducible in tests; production callers pass crypto/rand.
// Implements: prd002-structural-identity R2.
type Minter struct {
	src io.Reader
}

// NewMinter returns a Minter drawing randomness from src.
func NewMinter(src io.Reader) *Minter {
	return &Minter{src: src}
}

// Mint returns a fresh random (version 4) identity. It fails only if the
// randomness source fails.
func (m *Minter) Mint() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(m.src)
	if err != nil {
		return uuid.Nil, fmt.Errorf("mint identity: %w", err)
	}
	return id, nil
}

// MintValue wraps v with a fresh identity from m.
func MintValue[A any](m *Minter, v A) (Identified[A], error) {
	id, err := m.Mint()
	if err != nil {
		return Identified[A]{}, err
	}
	return Identified[A]{Value: v, ID: id}, nil
}

// identityNamespace is the name space for derived identities.
var identityNamespace = uuid.NameSpaceX500

// DeriveID derives the structural identity of an interior gate from its kind
// and the ordered identities of its operands, as a name-based (version 5)
// UUID. The derivation is pure: the same kind over the same ordered operand
// identities always yields the same identity, whatever payloads the operands
// carry. The kind tag participates in the hash so that And and Or over
// identical operands stay distinct.
// Implements: prd002-structural-identity R3.
func DeriveID(kind Kind, operands ...uuid.UUID) uuid.UUID {
	name := make([]byte, 0, len(kind.String())+37*len(operands))
	name = append(name, kind.String()...)
	for _, id := range operands {
		name = append(name, ':')
		name = append(name, id.String()...)
	}
	return uuid.NewSHA1(identityNamespace, name)
}

// Lift derives, from an algebra over plain values, an algebra over
// identified values. The payload of the result is the original algebra
// applied to the unwrapped operand payloads; the identity is the carried one
// for inputs and DeriveID over the operand identities otherwise. Lift does
// no caching or deduplication itself; it only guarantees that an external
// cache keyed by the derived identities would deduplicate structurally
// identical subtrees correctly.
// Implements: prd002-structural-identity R4.
func Lift[A any](algebra Algebra[A]) Algebra[Identified[A]] {
	return func(g Gate[Identified[A]]) Identified[A] {
		value := algebra(Map(g, func(op Identified[A]) A { return op.Value }))
		if g.Kind() == KindInput {
			return Identified[A]{Value: value, ID: g.First().ID}
		}
		ops := g.Operands()
		ids := make([]uuid.UUID, len(ops))
		for i, op := range ops {
			ids[i] = op.ID
		}
		return Identified[A]{Value: value, ID: DeriveID(g.Kind(), ids...)}
	}
}
