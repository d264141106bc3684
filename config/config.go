// Package config registers every setting with viper and resolves the player options snapshot.
package config

import (
	"errors"
	"strings"

	"github.com/mpq-cli/mpq/constant"
	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to env var suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, MPQ_ env vars and the optional mpq.toml in where.Config().
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
