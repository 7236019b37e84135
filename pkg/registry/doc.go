// Package registry records, per template identifier, the fingerprint of the
// last specification materialized in this process. It is how repeated
// materializations of an unchanged template become no-ops.
//
// The registry is an optimization, not a lock: callers materializing the
// same identifier concurrently must serialize themselves.
package registry
