// Command dpp is a dining philosophers simulation.
//
// N philosophers sit around a table with N forks. Each philosopher thinks,
// takes the two forks next to it and eats. Forks are always taken lower
// numbered first, a total order that rules out circular wait, so the table
// cannot deadlock:
//
//	dpp 5 42 10
//
// runs five philosophers with seed 42 for ten seconds from process start,
// printing the table every interval.
//
// The cfsms, migo and dot sub-commands print static models of the same
// protocol for checking with external tools.
package main
