package railmap

import "errors"

// Sentinel errors for catalog construction and lookups.
var (
	// ErrInvalidColor indicates an unrecognized color token.
	ErrInvalidColor = errors.New("railmap: invalid color")

	// ErrInvalidLength indicates a segment length outside 1..6.
	ErrInvalidLength = errors.New("railmap: invalid segment length")

	// ErrConnectionNotFound indicates a city pair without a direct segment.
	ErrConnectionNotFound = errors.New("railmap: connection not found")

	// ErrDuplicateConnection indicates a city pair listed twice in a dataset.
	ErrDuplicateConnection = errors.New("railmap: duplicate connection")

	// ErrInvalidRoute indicates consecutive route segments that share no city.
	ErrInvalidRoute = errors.New("railmap: invalid route")

	// ErrInvalidCity indicates an empty city name or a segment joining a city to itself.
	ErrInvalidCity = errors.New("railmap: invalid city")

	// ErrInvalidTicket indicates a ticket with non-positive points or unknown cities.
	ErrInvalidTicket = errors.New("railmap: invalid ticket")
)
