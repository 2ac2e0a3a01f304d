// Package export renders schedules and infeasibility certificates as plain
// text. Players are printed 1-based as A1..An and B1..Bn, and within each
// matchup the first mover is printed first, so the table reads as the
// order of play.
package export
