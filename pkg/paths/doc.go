// Package paths provides centralized path handling for wslaunch.
//
// It covers two distinct concerns:
//
//   - Template paths: Normalize turns a parent canonical path plus a raw
//     node name into a canonical, traversal-free, "/"-joined relative path.
//   - Storage layout: Paths resolves where templates are materialized on the
//     backing store.
//
// # Storage Layout
//
//	<base>/<data root>/templates/<sanitized identifier>/...
//
// The data root defaults to ".workspace-launch" relative to the working
// directory and may be overridden through configuration
// (data_root / WORKSPACE_LAUNCH_DATA_ROOT).
//
// # Usage
//
//	p, err := paths.New("")
//	dir := p.TemplateDir("demo") // /cwd/.workspace-launch/templates/demo
//
//	rel, err := paths.Normalize("src", `lib\util.go`) // "src/lib/util.go"
package paths
