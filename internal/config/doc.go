// Package config loads the agent's TOML configuration file.
//
// Configuration is optional: a missing file yields the defaults, and a
// present file only needs to name the values it overrides. Client
// tuning values left at zero are resolved to the client's own
// defaults at construction time.
package config
