// Package coins counts the ways to pay a target sum from a list of coin
// denominations, modulo 1,000,000,007.
//
// Two counting modes are supported:
//
//   - ModeOrdered counts ordered sequences of picks (compositions): [1,2]
//     and [2,1] are different ways to pay 3. NumberOfWays uses this mode.
//   - ModeCombinations counts multisets of picks using the suffix recurrence
//     over denomination indices, processed from the last index to the first.
//
// Each mode has more than one Counter implementation so that a run can
// cross-check them (see the orchestration package). Every counter works in
// O(n·x) time and O(x) memory.
package coins
