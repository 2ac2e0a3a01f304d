package core

// NewPairingMatrix allocates an n×n square with every cell set to -1
// (unassigned). Partially filled squares are transient search state; only
// complete squares belong in a Schedule.
//
// Complexity: O(n²) time and space.
func NewPairingMatrix(n int) PairingMatrix {
	var (
		pm = make(PairingMatrix, n)
		r  int
		i  int
	)
	for r = 0; r < n; r++ {
		pm[r] = make([]int, n)
		for i = 0; i < n; i++ {
			pm[r][i] = -1
		}
	}

	return pm
}

// NewColorMatrix allocates an all-false n×n color table.
func NewColorMatrix(n int) ColorMatrix {
	var (
		cm = make(ColorMatrix, n)
		r  int
	)
	for r = 0; r < n; r++ {
		cm[r] = make([]bool, n)
	}

	return cm
}

// Clone returns a deep copy of the square.
func (pm PairingMatrix) Clone() PairingMatrix {
	var (
		out = make(PairingMatrix, len(pm))
		r   int
	)
	for r = range pm {
		out[r] = make([]int, len(pm[r]))
		copy(out[r], pm[r])
	}

	return out
}

// Inverse returns the round-wise inverse square: cell [r][j] is the
// A-player met by B-player j in round r. The inverse is what links a
// coloring decision at (r, i) to B-player pm[r][i]'s balance counter.
//
// Contract: every row of pm must be a complete permutation of 0..n-1;
// ErrBadShape otherwise.
//
// Complexity: O(n²).
func (pm PairingMatrix) Inverse() (PairingMatrix, error) {
	var (
		n   = len(pm)
		inv = make(PairingMatrix, n)
		r   int
		i   int
		j   int
	)
	for r = 0; r < n; r++ {
		if len(pm[r]) != n {
			return nil, ErrBadShape
		}
		inv[r] = make([]int, n)
		for j = 0; j < n; j++ {
			inv[r][j] = -1
		}
		for i = 0; i < n; i++ {
			j = pm[r][i]
			if j < 0 || j >= n || inv[r][j] != -1 {
				return nil, ErrBadShape
			}
			inv[r][j] = i
		}
	}

	return inv, nil
}

// Shape checks that the matrix is a dense n×n table with entries in
// 0..n-1. It does not check the Latin property; that is the verifier's job.
func (pm PairingMatrix) Shape(p Params) error {
	if len(pm) != p.N {
		return ErrBadShape
	}
	var r, i int
	for r = 0; r < p.N; r++ {
		if len(pm[r]) != p.N {
			return ErrBadShape
		}
		for i = 0; i < p.N; i++ {
			if pm[r][i] < 0 || pm[r][i] >= p.N {
				return ErrBadShape
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the color table.
func (cm ColorMatrix) Clone() ColorMatrix {
	var (
		out = make(ColorMatrix, len(cm))
		r   int
	)
	for r = range cm {
		out[r] = make([]bool, len(cm[r]))
		copy(out[r], cm[r])
	}

	return out
}

// Shape checks that the color table is dense n×n.
func (cm ColorMatrix) Shape(p Params) error {
	if len(cm) != p.N {
		return ErrBadShape
	}
	var r int
	for r = 0; r < p.N; r++ {
		if len(cm[r]) != p.N {
			return ErrBadShape
		}
	}

	return nil
}

// Clone returns a deep copy of the schedule; mutating the copy never
// touches the original.
func (s Schedule) Clone() Schedule {
	return Schedule{
		Params:  s.Params,
		Pairing: s.Pairing.Clone(),
		Colors:  s.Colors.Clone(),
	}
}

// Round returns the realized matchups of round r in A-player order.
//
// Contract: s must be a complete schedule and 0 ≤ r < n.
//
// Complexity: O(n).
func (s Schedule) Round(r int) []Matchup {
	var (
		out = make([]Matchup, s.Params.N)
		i   int
	)
	for i = 0; i < s.Params.N; i++ {
		out[i] = Matchup{
			Round:  r,
			A:      i,
			B:      s.Pairing[r][i],
			AFirst: s.Colors[r][i],
		}
	}

	return out
}
