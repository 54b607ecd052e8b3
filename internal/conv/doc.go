// Package conv provides checked integer conversions.
//
// The arena addresses slots with uint32 handles while Go slices are indexed
// by int. Converting between the two goes through this package so that an
// oversized table is reported as an error instead of silently wrapping.
//
// For conversions that are provably safe by construction (loop indices
// bounded by a slice that was itself sized through conv), use direct casts.
package conv
