// Package fdsmerr defines the six error kinds of §7 that classify every
// fatal error the engine can produce (InvalidInput, Incompatibility,
// ResourceExhaustion, InvariantViolation, ConfigConflict, IoError), plus a
// thin Classify helper that walks an error chain to recover its Kind.
//
// Every other package keeps its own package-level sentinel errors (the
// teacher's convention: errors.New at package scope, wrapped with %w and a
// method-name prefix, checked with errors.Is) for its specific failures;
// fdsmerr does not replace those. New wraps an error in a KindError that
// carries a Kind and the originating component. No package of this module
// calls New: their sentinels are plain errors.New values returned as-is, so
// Classify reports KindUnknown for them unless a caller wraps them first.
package fdsmerr
