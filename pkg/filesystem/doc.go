// Package filesystem provides filesystem implementations for wslaunch.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, afero-backed filesystems, and go-billy
// filesystems. In-memory variants back the "memory" and "billy-memory"
// store backends and most tests.
package filesystem
