// Package tournament builds balanced first-move schedules for two-team
// round-robin tournaments: two teams of n = 2m players each play n rounds,
// every A-player meets every B-player exactly once, each round splits its n
// matchups into m "A moves first" and m "B moves first", and over the whole
// tournament every single player moves first in exactly m matchups.
//
// Finding such a schedule is a joint combinatorial design problem: the
// pairing plan is an n×n Latin square and the first-move assignment is a
// balanced binary matrix whose balance must also hold along the square's
// transversals. Cyclic pairing plans are provably impossible for odd m, so
// the module combines a closed-form infeasibility prover with a seeded,
// restart-based backtracking search.
//
// Subpackages:
//
//	core/     — parameters, pairing square, color matrix, Schedule
//	family/   — pluggable pairing constructions + infeasibility certificates
//	search/   — the joint pairing/coloring backtracking engine
//	satcolor/ — SAT-backed coloring of a fixed pairing square (go-air/gini)
//	verify/   — independent bit-for-bit schedule verification
//	export/   — plain-text rendering of finished schedules
//
// The cmd/tournament binary wires the pieces into a CLI.
package tournament
