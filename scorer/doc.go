// Package scorer implements the type-erased scorer context that crosses
// the ABI: constructed once against a single pattern string, invoked many
// times with varying cutoffs, destroyed exactly once.
//
// A Family builds a width-specialized Cached scorer from the pattern's
// resolved code units; Func erases the concrete algorithm behind the
// Init / CallF64 / Dtor lifecycle. Every failure inside an entry point is
// translated into host error state exactly once and reported as a false
// return, never as a panic escaping into host code.
package scorer
