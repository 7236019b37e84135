// Package workspace ties normalization, change detection and
// materialization together.
//
// The control flow for one call is:
//
//  1. Build the node tree into a deterministic types.Spec (no I/O; any
//     validation error aborts here).
//  2. Ask the registry whether the spec's fingerprint changed for the
//     identifier. Unchanged specs stop here.
//  3. With a backing store, wipe and rewrite the identifier's subtree.
//     Without one, skip silently.
//  4. Build the deep link for the identifier.
//
// Engine holds its collaborators explicitly. CreateWorkspaceTemplate uses a
// process-wide default engine built on first use.
package workspace
