// Package verify re-checks a finished schedule against every balance
// constraint, bit for bit and independently of the solver that produced it.
// It serves two roles: the search engine's acceptance gate (a schedule is
// never returned unverified) and a standalone oracle for externally
// supplied schedules such as hand-authored tables.
//
// The five checks, in the order they are applied:
//
//  1. every round's pairing row is a permutation (perfect matching);
//  2. every pairing column is a permutation (each A meets each B once);
//  3. every round has exactly m A-first matchups;
//  4. every A-player moves first in exactly m rounds;
//  5. every B-player moves first in exactly m rounds, computed by
//     reindexing the color bits through the pairing square.
//
// The first violated constraint is reported as a structured *Violation.
package verify
