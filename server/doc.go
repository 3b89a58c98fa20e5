// Package server exposes a network.Game over HTTP/JSON.
//
// Every request names a side ("self" or "opponent", default self). Domain
// errors map onto status codes: malformed input 400, unknown city, segment
// or ticket 404, constraint or ownership conflicts 409, and search bounds
// 422.
package server
