// Package materialize writes a flattened template specification onto a
// backing store, replacing whatever was previously materialized for the
// same identifier.
//
// Materialize is wipe-then-rewrite: the identifier's subtree is removed and
// recreated before directories and files are written, so files left over
// from an earlier, differently shaped specification never survive. A failure
// part way through is not rolled back; re-running converges on the same
// result.
package materialize
