// Package paths provides centralized path handling for wsp.
//
// It knows the on-disk layout the switcher works against:
//
//	<root>/                    (default ~/workspace)
//	  current/
//	    wsp                    active workspace name
//	    env                    active environment name
//	  <workspace>/
//	    default/               fallback sources
//	    <environment>/         environment sources
//
// and the XDG locations for wsp's own configuration.
//
// # Environment Variables
//
//   - WSP_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/wsp)
//
// The workspace root itself comes from pkg/config (key "root", env WSP_ROOT).
package paths
