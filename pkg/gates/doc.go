// Package gates defines an immutable expression-tree representation for
// boolean circuits, a fold that collapses a tree into a single value using a
// caller-supplied algebra, and a content-addressing layer that derives a
// deterministic structural identity for every node.
// Implements: prd001-gates-core (Kind, Gate, Map, Tree, Fold, MapInputs);
//
//	prd002-structural-identity (Identified, Minter, DeriveID, Lift).
package gates

// Version is the circuits library version.
const Version = "0.1.0"
