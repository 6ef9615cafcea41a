// Package telemetry provides the structured event emitter §9 calls for as
// the replacement for compile-time debug prints: "a structured event
// emitter enabled per component at run time via the Config; core code does
// not embed file I/O."
//
// Emitter wraps github.com/rs/zerolog. Components accept an Emitter at
// construction (never a package-level global) and call Debug/Info/Warn/Error
// with key-value pairs; Nop discards everything and is used when a
// component is given a nil Emitter. fdsmconfig.Config.Debug does not select
// an emitter.
package telemetry
