// Package config loads wslaunch configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. .wslaunch.toml or wslaunch.toml in the working directory
//  3. WORKSPACE_LAUNCH_* environment variables
//  4. command line overrides
//
// Environment keys lose the prefix and are lower-cased. A double underscore
// separates levels, so WORKSPACE_LAUNCH_STORE__BACKEND sets store.backend
// while WORKSPACE_LAUNCH_OWNER_ID sets owner_id.
package config
