// Package config loads editcore settings.
//
// Settings come from three layers, each overriding the one below:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← EDITCORE_*, highest priority
//	├─────────────────────────────┤
//	│  2. Config File             │  ← .toml, .yaml or .yml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Layers are read into nested maps by the loader sub-package, merged, and
// then decoded into Config. A missing config file is not an error.
//
// # Settings
//
//	[editor]
//	indentWidth = 4        # spaces added by indent_selection
//	maxUndoEntries = 1000  # transactions kept for undo
//	lineEnding = "lf"      # "lf", "crlf", "cr" or "auto"
//	initialMode = "normal"
//	systemClipboard = false  # + and * use the OS clipboard
//
//	[logging]
//	level = "info"         # debug, info, warn, error
//	format = "console"     # console or json
//	file = ""              # empty logs to stderr
//
//	[dispatcher]
//	async = false
//	metrics = false
//	recoverPanics = true
//
// # Environment
//
// EDITCORE_LOG_LEVEL, EDITCORE_LOG_FORMAT, EDITCORE_LOG_FILE,
// EDITCORE_INDENT_WIDTH, EDITCORE_MAX_UNDO, EDITCORE_LINE_ENDING,
// EDITCORE_INITIAL_MODE, EDITCORE_CLIPBOARD, EDITCORE_ASYNC,
// EDITCORE_METRICS and EDITCORE_RECOVER_PANIC map to the settings above. Any other
// EDITCORE_SECTION_SETTING_NAME variable maps to section.settingName.
package config
