// Package bracket tracks competitor advancement through the championship and
// consolation brackets of each weight class.
//
// The tracker consumes resolved match events in transcript order and builds
// one record per competitor: ordered match history, championship and
// consolation win counts, advancement/bonus/placement point sums, final
// placement, and a round-by-round outcome grid ("W"/"L" per round column).
// Weight classes are independent of one another; within a weight class event
// order matters because round and placement state is sequential.
package bracket
