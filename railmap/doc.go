// Package railmap is the immutable catalog of a rail-network board: cities,
// colored segments (connections), destination tickets and routes.
//
// Identity
//
// Every segment has a canonical Key built from its unordered city pair
// ("min|max"). Keys, never pointers, are used for membership, deduplication
// and map keying, so two Connection values for the same pair are the same
// segment regardless of weight or direction.
//
// Scoring
//
// A segment of length 1..6 scores 1, 2, 4, 7, 10 or 15 points. Its routing
// weight is trains − pointImportance·points, with pointImportance in
// [0, MaxPointImportance]; the upper bound keeps every weight positive.
//
// Datasets
//
// Load parses a YAML dataset of segment and ticket records; USA returns the
// embedded map of the original North American board.
package railmap
