// Package config provides the configuration system for lesser.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← LESSER_<SECTION>_<KEY>
//	├─────────────────────────────┤
//	│  2. Configuration File      │  ← ~/.config/lesser/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Layers are merged as generic maps and then decoded strictly into Config,
// so a misspelled setting is reported rather than ignored.
//
// # File Format
//
//	[pager]
//	queue_size = 100
//	bell = true
//
//	[log]
//	level = "info"
//	file = ""
//
//	[keys]
//	"h" = "scroll-left"
//	"q" = "none"
package config
