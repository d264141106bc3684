package config

import (
	"testing"

	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/config")
		viper.Reset()

		Convey("Setup succeeds without a config file", func() {
			So(Setup(), ShouldBeNil)

			Convey("and every default is populated", func() {
				for name := range Default {
					So(viper.Get(name), ShouldNotBeNil)
				}
				So(viper.GetString(key.PlayerBinary), ShouldEqual, "mplayer")
			})
		})

		Convey("Setup reads mpq.toml", func() {
			body := "[player]\nremote = true\nremote_host = \"tv\"\n"
			So(afero.WriteFile(filesystem.API(), "/config/mpq.toml", []byte(body), 0o644), ShouldBeNil)

			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.PlayerRemote), ShouldBeTrue)
			So(viper.GetString(key.PlayerRemoteHost), ShouldEqual, "tv")
		})

		Convey("Env vars override defaults", func() {
			t.Setenv("MPQ_PLAYER_BINARY", "/usr/local/bin/mplayer")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.PlayerBinary), ShouldEqual, "/usr/local/bin/mplayer")
		})

		Reset(func() {
			filesystem.SetOsFs()
			viper.Reset()
		})
	})

	Convey("EnvKeyReplacer converts dots to underscores", t, func() {
		So(EnvKeyReplacer.Replace("player.remote_host"), ShouldEqual, "player_remote_host")
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.PlayerRemoteHost]

		Convey("Its env var carries the app prefix", func() {
			So(field.Env(), ShouldEqual, "MPQ_PLAYER_REMOTE_HOST")
		})

		Convey("It renders and marshals", func() {
			So(field.Pretty(), ShouldContainSubstring, key.PlayerRemoteHost)

			b, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"type":"string"`)
		})
	})
}

func TestPlayerOptions(t *testing.T) {
	Convey("Given player settings", t, func() {
		viper.Reset()
		for name, field := range Default {
			viper.SetDefault(name, field.Value)
		}
		viper.Set(key.PlayerRemote, true)
		viper.Set(key.PlayerRemoteHost, "tv")
		viper.Set(key.PlayerModules, []string{"IDENTIFY", "CPLAYER"})
		viper.Set(key.PlayerArgs, []string{"-vo", "null"})

		opts := PlayerOptions()

		So(opts.Binary, ShouldEqual, "mplayer")
		So(opts.Remote, ShouldBeTrue)
		So(opts.RemoteHost, ShouldEqual, "tv")
		So(opts.Display, ShouldEqual, ":0")
		So(opts.Modules, ShouldResemble, []string{"IDENTIFY", "CPLAYER"})
		So(opts.Args, ShouldResemble, []string{"-vo", "null"})

		Reset(viper.Reset)
	})
}
