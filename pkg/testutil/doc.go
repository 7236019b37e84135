// Package testutil provides utilities for testing wslaunch components.
//
// Key components:
//   - CountingFS: wraps any types.FS, counting reads and writes and
//     injecting errors per path, so tests can assert that a cache hit
//     performed zero filesystem writes
//   - Tree: snapshot of every file under a directory, for comparing
//     materialized output
//
// All test data should be defined inline, not in external files.
package testutil
