package gates

import "fmt"

// Gate kinds. The set is closed: every operation in this package handles
// exactly these four and nothing else.
// Implements: prd001-gates-core R1.
const (
	KindInput Kind = iota // zero-operand node carrying a payload
	KindNot               // one operand
	KindAnd               // two operands, order-significant
	KindOr                // two operands, order-significant
)

// Kind identifies one of the four gate kinds.
type Kind uint8

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindNot:
		return "not"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Gate is one level of circuit structure. The slot type V is whatever the
// caller has put into the slots: a subtree while building (see Tree), or an
// already-accumulated value when an algebra receives the gate during a Fold.
// A Gate never knows which; it only preserves kind, arity, and slot order.
//
// The zero value is an input gate over V's zero value. Gates are immutable;
// all methods are read-only.
// Implements: prd001-gates-core R2.
type Gate[V any] struct {
	kind Kind
	x, y V // y is meaningful only for KindAnd and KindOr
}

// InputGate returns a zero-operand gate carrying v.
func InputGate[V any](v V) Gate[V] {
	return Gate[V]{kind: KindInput, x: v}
}

// NotGate returns a negation gate over a single operand.
func NotGate[V any](x V) Gate[V] {
	return Gate[V]{kind: KindNot, x: x}
}

// AndGate returns a conjunction gate over two ordered operands.
func AndGate[V any](x, y V) Gate[V] {
	return Gate[V]{kind: KindAnd, x: x, y: y}
}

// OrGate returns a disjunction gate over two ordered operands.
func OrGate[V any](x, y V) Gate[V] {
	return Gate[V]{kind: KindOr, x: x, y: y}
}

// Kind returns the gate kind.
func (g Gate[V]) Kind() Kind { return g.kind }

// First returns the first slot: the payload of an input, the operand of a
// negation, or the left operand of a conjunction or disjunction.
func (g Gate[V]) First() V { return g.x }

// Second returns the right operand. It panics for input and negation gates,
// which have no second slot; that is a programming error, not a tree state.
func (g Gate[V]) Second() V {
	if g.kind != KindAnd && g.kind != KindOr {
		panic("gates: " + g.kind.String() + " gate has no second operand")
	}
	return g.y
}

// Arity returns the number of slots: 1 for input and not, 2 for and and or.
func (g Gate[V]) Arity() int {
	if g.kind == KindAnd || g.kind == KindOr {
		return 2
	}
	return 1
}

// Operands returns the slot values in slot order. The identity derivation
// walks this slice instead of inspecting gate structure field by field.
// Implements: prd001-gates-core R2.3.
func (g Gate[V]) Operands() []V {
	if g.Arity() == 2 {
		return []V{g.x, g.y}
	}
	return []V{g.x}
}

// Map applies f independently to each slot of g, preserving kind, arity, and
// slot order. The left slot is always transformed before the right one, so
// side-effecting f observes a fixed order. Map never recurses into whatever
// structure V itself might contain.
// Implements: prd001-gates-core R3.
func Map[V, W any](g Gate[V], f func(V) W) Gate[W] {
	out := Gate[W]{kind: g.kind}
	switch g.kind {
	case KindInput, KindNot:
		out.x = f(g.x)
	case KindAnd, KindOr:
		out.x = f(g.x)
		out.y = f(g.y)
	}
	return out
}
