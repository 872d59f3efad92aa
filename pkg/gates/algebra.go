package gates

// Reference algebras. Each one is a total interpretation of a single gate
// level; Fold composes them over a whole tree. Boolean and Soft agree
// wherever Soft's inputs are exactly 0 or 1.
// Implements: prd001-gates-core R7.

// Boolean evaluates a gate over truth values.
func Boolean(g Gate[bool]) bool {
	switch g.Kind() {
	case KindInput:
		return g.First()
	case KindNot:
		return !g.First()
	case KindAnd:
		return g.First() && g.Second()
	case KindOr:
		return g.First() || g.Second()
	default:
		panic("gates: unhandled kind " + g.Kind().String())
	}
}

// Soft evaluates a gate over the continuous relaxation of boolean logic on
// [0, 1]: negation is 1-x, conjunction is the product, disjunction is the
// probabilistic sum 1-(1-x)(1-y). At the extremes {0, 1} Soft reproduces
// Boolean exactly.
func Soft(g Gate[float64]) float64 {
	switch g.Kind() {
	case KindInput:
		return g.First()
	case KindNot:
		return 1 - g.First()
	case KindAnd:
		return g.First() * g.Second()
	case KindOr:
		return 1 - (1-g.First())*(1-g.Second())
	default:
		panic("gates: unhandled kind " + g.Kind().String())
	}
}

// Printer renders a gate as a fully parenthesized formula over its operand
// strings. No operator-precedence elision: every interior node contributes
// its own parentheses.
func Printer(g Gate[string]) string {
	switch g.Kind() {
	case KindInput:
		return g.First()
	case KindNot:
		return "!(" + g.First() + ")"
	case KindAnd:
		return "(" + g.First() + "&" + g.Second() + ")"
	case KindOr:
		return "(" + g.First() + "|" + g.Second() + ")"
	default:
		panic("gates: unhandled kind " + g.Kind().String())
	}
}

// Gradient returns the partial sensitivities of a gate's output under Soft
// with respect to its own operand values, in slot order. This is a one-step
// oracle: it reads only the operand values of the gate it is given and does
// not compose sensitivities across tree levels.
func Gradient(g Gate[float64]) []float64 {
	switch g.Kind() {
	case KindInput:
		return []float64{1}
	case KindNot:
		return []float64{-1}
	case KindAnd:
		return []float64{g.Second(), g.First()}
	case KindOr:
		return []float64{1 - g.Second(), 1 - g.First()}
	default:
		panic("gates: unhandled kind " + g.Kind().String())
	}
}
