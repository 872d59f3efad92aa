package gates

// Tree is the recursive view of a circuit: a gate whose slots hold subtrees,
// except for inputs, which hold a payload of type T. Trees are finite,
// acyclic, and immutable after construction; the constructors below are the
// only way to build one. Fold and MapInputs never mutate their argument.
// Implements: prd001-gates-core R4.
type Tree[T any] struct {
	kind  Kind
	value T // payload when kind == KindInput
	left  *Tree[T]
	right *Tree[T] // nil except for KindAnd and KindOr
}

// Input returns a leaf holding v.
func Input[T any](v T) *Tree[T] {
	return &Tree[T]{kind: KindInput, value: v}
}

// Not returns the negation of x.
func Not[T any](x *Tree[T]) *Tree[T] {
	return &Tree[T]{kind: KindNot, left: x}
}

// And returns the conjunction of x and y, in that slot order.
func And[T any](x, y *Tree[T]) *Tree[T] {
	return &Tree[T]{kind: KindAnd, left: x, right: y}
}

// Or returns the disjunction of x and y, in that slot order.
func Or[T any](x, y *Tree[T]) *Tree[T] {
	return &Tree[T]{kind: KindOr, left: x, right: y}
}

// XOR builds exclusive-or from the four primitive kinds:
// (x & !y) | (!x & y). The operand trees are shared between the two
// branches; trees are immutable, so sharing is indistinguishable from
// copying.
func XOR[T any](x, y *Tree[T]) *Tree[T] {
	return Or(And(x, Not(y)), And(Not(x), y))
}

// EQ builds logical equivalence from the four primitive kinds:
// (x | !y) & (!x | y).
func EQ[T any](x, y *Tree[T]) *Tree[T] {
	return And(Or(x, Not(y)), Or(Not(x), y))
}

// Kind returns the kind of the root node.
func (t *Tree[T]) Kind() Kind { return t.kind }

// Value returns the payload of an input node. It panics on interior nodes.
func (t *Tree[T]) Value() T {
	if t.kind != KindInput {
		panic("gates: " + t.kind.String() + " node carries no payload")
	}
	return t.value
}

// gate views one interior node as a one-level Gate over its subtrees.
func (t *Tree[T]) gate() Gate[*Tree[T]] {
	return Gate[*Tree[T]]{kind: t.kind, x: t.left, y: t.right}
}

// fromGate rebuilds an interior node from a one-level Gate over subtrees.
func fromGate[T any](g Gate[*Tree[T]]) *Tree[T] {
	return &Tree[T]{kind: g.kind, left: g.x, right: g.y}
}

// Algebra is a total, deterministic interpretation of one gate level: given a
// gate whose slots hold already-accumulated values, it produces the
// accumulated value for the node itself.
type Algebra[A any] func(Gate[A]) A

// Fold collapses t bottom-up into a single value, applying algebra exactly
// once per node. Children are folded before their parent, left slot before
// right, so algebras with side effects or floating-point rounding behave
// reproducibly. Fold performs no memoization: structurally identical subtrees
// at different positions are folded independently.
//
// The traversal keeps an explicit frame stack instead of using native
// recursion, so the depth a Fold can handle is bounded by the heap rather
// than the goroutine stack.
// Implements: prd001-gates-core R5.
func Fold[A any](algebra Algebra[A], t *Tree[A]) A {
	type frame struct {
		node     *Tree[A]
		expanded bool // children already pushed
	}

	stack := []frame{{node: t}}
	var values []A // accumulated results, post-order

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := top.node

		if !top.expanded {
			if n.kind == KindInput {
				values = append(values, algebra(InputGate(n.value)))
				continue
			}
			// Revisit the node after its children; push the right child
			// first so the left one is folded first.
			stack = append(stack, frame{node: n, expanded: true})
			if n.right != nil {
				stack = append(stack, frame{node: n.right})
			}
			stack = append(stack, frame{node: n.left})
			continue
		}

		g := Gate[A]{kind: n.kind}
		switch n.kind {
		case KindNot:
			g.x = values[len(values)-1]
			values = values[:len(values)-1]
		case KindAnd, KindOr:
			g.x = values[len(values)-2]
			g.y = values[len(values)-1]
			values = values[:len(values)-2]
		}
		values = append(values, algebra(g))
	}

	return values[0]
}

// MapInputs rewrites every input payload of t through f, leaving the shape
// and slot order of every interior node unchanged. The result is a fresh
// tree; t is not modified. Each level goes through the one-level Map, so
// interior nodes are transformed slot by slot in the fixed left-first order.
// Implements: prd001-gates-core R6.
func MapInputs[T, U any](f func(T) U, t *Tree[T]) *Tree[U] {
	if t.kind == KindInput {
		return Input(f(t.value))
	}
	return fromGate(Map(t.gate(), func(child *Tree[T]) *Tree[U] {
		return MapInputs(f, child)
	}))
}
