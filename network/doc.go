// Package network holds the mutable game state on top of the immutable
// catalog.
//
//   - State is one network's view: the cannot-pass and established key sets,
//     the selected tickets, the train budget, and a router.Router rebuilt on
//     every constraint change. A key may never be in both sets.
//   - Ownership records which network holds each track of each segment.
//   - Game is the coordinator of two peer States (Self and Opponent). It
//     claims tracks, mirrors an establish on one side into a cannot-pass on
//     the other, and serializes every call behind one mutex so concurrent
//     callers never see a half-applied override.
package network
