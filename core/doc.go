// Package core defines the data model shared by every solver stage:
// tournament parameters, the pairing square, the first-move color matrix,
// and the finished Schedule.
//
// Conventions:
//   - Players are indexed 0..n-1 on each team; rounds are indexed 0..n-1.
//   - PairingMatrix[r][i] names the B-player that A-player i meets in
//     round r. A complete pairing square is a Latin square: every row and
//     every column is a permutation of 0..n-1.
//   - ColorMatrix[r][i] is true when A-player i moves first in round r.
//     B-side first moves are the complement within the round.
//
// The package is pure: no I/O, no logging, no hidden state. Validation
// failures are reported through sentinel errors so callers can classify
// them with errors.Is.
package core
