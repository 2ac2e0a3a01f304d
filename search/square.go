package search

import (
	"math/rand"

	"github.com/tesolchina/math-tournament/core"
)

// randomSquare grows a candidate pairing square row by row. Row 0 is the
// identity matching; every later row is a seeded random perfect matching
// over the pairs no earlier row used. A partial Latin rectangle always
// extends by one row, so the construction cannot dead-end.
func randomSquare(p core.Params, seed int64) core.PairingMatrix {
	var (
		n    = p.N
		rng  = rand.New(rand.NewSource(seed))
		pm   = core.NewPairingMatrix(n)
		used = make([][]bool, n) // used[i][j]: pair (A_i, B_j) already scheduled
		r, i int
	)
	for i = range used {
		used[i] = make([]bool, n)
	}
	for i = 0; i < n; i++ {
		pm[0][i] = i
		used[i][i] = true
	}
	for r = 1; r < n; r++ {
		row := randomMatching(n, used, rng)
		copy(pm[r], row)
		for i = 0; i < n; i++ {
			used[i][row[i]] = true
		}
	}

	return pm
}

// randomMatching finds a perfect matching on the bipartite graph of unused
// pairs with augmenting paths, randomizing both the vertex order and each
// vertex's candidate order. The graph is regular, so a perfect matching
// always exists and every augmentation succeeds.
func randomMatching(n int, used [][]bool, rng *rand.Rand) []int {
	var (
		row      = make([]int, n) // position -> value
		matchPos = make([]int, n) // value -> position
		adj      = make([][]int, n)
		seen     = make([]bool, n)
		i, j     int
	)
	for i = 0; i < n; i++ {
		row[i] = -1
		matchPos[i] = -1
		for j = 0; j < n; j++ {
			if !used[i][j] {
				adj[i] = append(adj[i], j)
			}
		}
		list := adj[i]
		rng.Shuffle(len(list), func(a, b int) { list[a], list[b] = list[b], list[a] })
	}

	var augment func(i int) bool
	augment = func(i int) bool {
		for _, j := range adj[i] {
			if seen[j] {
				continue
			}
			seen[j] = true
			if matchPos[j] == -1 || augment(matchPos[j]) {
				matchPos[j] = i
				row[i] = j
				return true
			}
		}

		return false
	}

	for _, i = range rng.Perm(n) {
		if row[i] != -1 {
			continue
		}
		clear(seen)
		augment(i)
	}

	return row
}
