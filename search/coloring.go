package search

import "github.com/tesolchina/math-tournament/core"

// status classifies how one search stage ended.
type status uint8

const (
	// statusExhausted: the subtree holds no solution. Definite.
	statusExhausted status = iota
	// statusFound: a complete coloring was assembled.
	statusFound
	// statusCapped: the node cap or an external stop cut the search short.
	statusCapped
)

// colorer runs the bounded first-move assignment search on one candidate
// square. One node is one entry into a round; counters bound both sides:
// aFirst[i] counts A_i's firsts so far, bSecond[j] counts the rounds where
// B_j's opponent moved first. Both must land exactly on m.
type colorer struct {
	n, m    int
	pairing core.PairingMatrix
	colors  core.ColorMatrix
	aFirst  []int
	bSecond []int

	// per-round scratch; the recursion at depth r owns row r
	forced [][]int
	free   [][]int
	comb   [][]int

	nodes int64
	limit int64
	stop  func() bool // polled every 1024 nodes; nil means never
}

func newColorer(p core.Params, pm core.PairingMatrix, limit int64, stop func() bool) *colorer {
	var (
		n = p.N
		c = &colorer{
			n:       n,
			m:       p.M,
			pairing: pm,
			colors:  core.NewColorMatrix(n),
			aFirst:  make([]int, n),
			bSecond: make([]int, n),
			forced:  make([][]int, n),
			free:    make([][]int, n),
			comb:    make([][]int, n),
			limit:   limit,
			stop:    stop,
		}
	)
	for r := 0; r < n; r++ {
		c.forced[r] = make([]int, 0, n)
		c.free[r] = make([]int, 0, n)
		c.comb[r] = make([]int, p.M)
	}

	return c
}

// search colors all rounds. On statusFound, c.colors holds the witness.
func (c *colorer) search() status {
	return c.round(0)
}

func (c *colorer) round(r int) status {
	c.nodes++
	if c.nodes > c.limit {
		return statusCapped
	}
	if c.nodes&1023 == 0 && c.stop != nil && c.stop() {
		return statusCapped
	}
	if r == c.n {
		// The bound checks below pin every counter to m once no rounds
		// remain, so reaching the leaf is already a complete witness.
		return statusFound
	}

	var (
		remain = c.n - r - 1
		forced = c.forced[r][:0]
		free   = c.free[r][:0]
		i, j   int
	)
	for i = 0; i < c.n; i++ {
		j = c.pairing[r][i]
		var (
			must = c.aFirst[i]+remain < c.m || c.bSecond[j]+remain < c.m
			cant = c.aFirst[i] >= c.m || c.bSecond[j] >= c.m
		)
		switch {
		case must && cant:
			return statusExhausted
		case must:
			forced = append(forced, i)
		case cant:
			// excluded from this round's firsts
		default:
			free = append(free, i)
		}
	}

	need := c.m - len(forced)
	if need < 0 || need > len(free) {
		return statusExhausted
	}

	comb := c.comb[r][:need]
	for k := range comb {
		comb[k] = k
	}
	for {
		c.assign(r, forced, free, comb, true)
		if c.feasible(remain) {
			switch st := c.round(r + 1); st {
			case statusFound:
				return statusFound
			case statusCapped:
				c.assign(r, forced, free, comb, false)
				return statusCapped
			}
		}
		c.assign(r, forced, free, comb, false)
		if !nextComb(comb, len(free)) {
			break
		}
	}

	return statusExhausted
}

// assign applies (or undoes) one round's choice: all forced positions plus
// the free positions selected by comb.
func (c *colorer) assign(r int, forced, free, comb []int, on bool) {
	var d = 1
	if !on {
		d = -1
	}
	for _, i := range forced {
		c.colors[r][i] = on
		c.aFirst[i] += d
		c.bSecond[c.pairing[r][i]] += d
	}
	for _, k := range comb {
		i := free[k]
		c.colors[r][i] = on
		c.aFirst[i] += d
		c.bSecond[c.pairing[r][i]] += d
	}
}

// feasible checks that every counter can still land on m with remain
// rounds to go.
func (c *colorer) feasible(remain int) bool {
	for i := 0; i < c.n; i++ {
		if c.aFirst[i] > c.m || c.aFirst[i]+remain < c.m {
			return false
		}
		if c.bSecond[i] > c.m || c.bSecond[i]+remain < c.m {
			return false
		}
	}

	return true
}

// nextComb advances comb to the lexicographically next k-subset of 0..n-1,
// returning false after the last one. The empty subset has no successor.
func nextComb(comb []int, n int) bool {
	var k = len(comb)
	for i := k - 1; i >= 0; i-- {
		if comb[i] < n-k+i {
			comb[i]++
			for j := i + 1; j < k; j++ {
				comb[j] = comb[j-1] + 1
			}
			return true
		}
	}

	return false
}
