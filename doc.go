// Package simplex implements the evaluation kernel of a small symbolic
// computation engine.
//
// Expressions are trees written as "Head[leaf, leaf, ...]". Leaves are atoms,
// which are numbers, quoted text, or symbols, or nested expressions. The
// arithmetic heads Plus, Subtract, Times, Divide, and Power fold their
// numeric leaves and collapse to a single atom when every leaf is numeric;
// otherwise they are irreducible and remain as written.
//
// User-defined functions bind a head, a list of pattern parameters written
// "a_", and a body template. Evaluating a function substitutes arguments for
// its parameters in a copy of the body:
//
//	Pythag[a_, b_] := List[Plus[Pow[a, 2], Pow[b, 2]]]
//
// Numbers form a small tower of 64-bit integers, fixed-precision reals, and
// an absorbing not-a-number value. Reals that hold an exact integer collapse
// back to integers.
//
package simplex
