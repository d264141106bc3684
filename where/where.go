// Package where resolves the application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
var EnvConfigPath = strings.ToUpper(constant.App) + "_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring EnvConfigPath
// before the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History resolves the play history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves a scratch directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
