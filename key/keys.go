// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback - these keys shape the immutable options snapshot handed to the player on every launch.
const (
	PlayerBinary     = "player.binary"
	PlayerArgs       = "player.args"
	PlayerRemote     = "player.remote"
	PlayerRemoteHost = "player.remote_host"
	PlayerDisplay    = "player.display"
	PlayerQuiet      = "player.quiet"
	PlayerModules    = "player.modules"
	PlayerAutoplay   = "player.autoplay"
)

// History Tracking - these keys configure the persistence of finished queue items.
const (
	HistorySave       = "history.save"
	HistoryMaxEntries = "history.max_entries"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
