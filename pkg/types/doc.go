// Package types defines the core types and interfaces used throughout wslaunch.
// This includes the template node tree (Directory and File), the flattened
// Spec handed to the registry and materializer, and the FS interface that
// backs materialization.
package types
