package config

import (
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/player"
	"github.com/spf13/viper"
)

// PlayerOptions snapshots the player.* settings. The player copies the
// result, so later config changes never reach a running player.
func PlayerOptions() player.Options {
	return player.Options{
		Binary:     viper.GetString(key.PlayerBinary),
		Args:       viper.GetStringSlice(key.PlayerArgs),
		Remote:     viper.GetBool(key.PlayerRemote),
		RemoteHost: viper.GetString(key.PlayerRemoteHost),
		Display:    viper.GetString(key.PlayerDisplay),
		Quiet:      viper.GetBool(key.PlayerQuiet),
		Modules:    viper.GetStringSlice(key.PlayerModules),
	}
}
