package network

import "errors"

// Sentinel errors returned by network operations.
var (
	// ErrConstraintConflict indicates a constraint change that contradicts the
	// current sets: adding a key already present in either set, or removing a
	// key that is not present.
	ErrConstraintConflict = errors.New("network: constraint conflict")

	// ErrInvalidTrack indicates a track index the segment does not have.
	ErrInvalidTrack = errors.New("network: invalid track")

	// ErrTrackOwned indicates a track already held by another network.
	ErrTrackOwned = errors.New("network: track already owned")

	// ErrNotOwner indicates releasing a track the network does not hold.
	ErrNotOwner = errors.New("network: track not owned by network")

	// ErrUnknownTicket indicates a ticket that is not in the catalog or not selected.
	ErrUnknownTicket = errors.New("network: unknown ticket")

	// ErrInvalidSide indicates a Side other than Self or Opponent.
	ErrInvalidSide = errors.New("network: invalid side")
)
