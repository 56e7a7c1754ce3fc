// Package config handles configuration management for wsp.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded/defaults.toml (workspace root and the managed file table)
//  2. the user file ($XDG_CONFIG_HOME/wsp/config.toml, or --config)
//  3. WSP_ environment variables (WSP_ROOT=/srv/ws sets root)
//
// Lists are replaced, not merged: a user file that sets managed_files owns
// the whole table.
package config
