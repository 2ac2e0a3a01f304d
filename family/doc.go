// Package family models restricted pairing-square construction families as
// pluggable strategies. A family can materialize its square for a given
// tournament size and, crucially, can derive the necessary balance equation
// its structure imposes on any first-move coloring. When that equation has
// no integer solution the family is infeasible as a whole. That is a
// closed-form proof, not a search failure, and the derivation is packaged
// into a Certificate that third parties can re-check without running any
// solver.
//
// Families implemented:
//
//   - CyclicShift: round r pairs A_i with B_{(i+r) mod n}. Infeasible
//     whenever m = n/2 is odd (the classic obstruction that rules out the
//     n=10 cyclic tournament).
//   - ShiftSwap: even rounds shift by 2⌊r/2⌋, odd rounds additionally swap
//     adjacent opponents. No closed-form obstruction is known, so the
//     prover always answers "inconclusive" and the search decides.
package family
