// Package satcolor decides, for a fixed pairing square, whether a balanced
// first-move assignment exists, by compiling the balance constraints to CNF
// and handing them to a SAT solver.
//
// One boolean variable per cell states "the A-player of this matchup moves
// first". Sorting-network cardinality constraints pin three families of
// sums to exactly m: each round's row, each A-player's column, and each
// B-player's cell group gathered through the square. The solver either
// returns a witness coloring or proves that this particular square admits
// none, which is what makes the backend complete per candidate: an
// unsatisfiable verdict is definite, not a budget artifact.
package satcolor
