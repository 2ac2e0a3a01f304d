package export_test

import (
	"os"

	"github.com/tesolchina/math-tournament/core"
	"github.com/tesolchina/math-tournament/export"
)

func ExampleWriteTable() {
	p, _ := core.NewParams(2)
	s := core.Schedule{
		Params:  p,
		Pairing: core.PairingMatrix{{0, 1}, {1, 0}},
		Colors:  core.ColorMatrix{{true, false}, {false, true}},
	}
	_ = export.WriteTable(os.Stdout, s)
	// Output:
	// Round 1: A1-B1 B2-A2
	// Round 2: B2-A1 A2-B1
}
