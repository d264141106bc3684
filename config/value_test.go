package config

import (
	"errors"
	"testing"

	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/player"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given registered fields", t, func() {
		Convey("Strings are taken as is", func() {
			v, err := Parse(key.PlayerRemoteHost, []string{"tv"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "tv")
		})

		Convey("Integers are parsed", func() {
			v, err := Parse(key.HistoryMaxEntries, []string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)

			_, err = Parse(key.HistoryMaxEntries, []string{"many"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans are parsed", func() {
			v, err := Parse(key.PlayerRemote, []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = Parse(key.PlayerRemote, []string{"sure"})
			So(err, ShouldNotBeNil)
		})

		Convey("Scalars take exactly one word", func() {
			_, err := Parse(key.PlayerBinary, []string{"mplayer", "extra"})
			So(err, ShouldNotBeNil)
			_, err = Parse(key.PlayerBinary, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Lists keep every word", func() {
			v, err := Parse(key.PlayerArgs, []string{"-vo", "null"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"-vo", "null"})
		})

		Convey("Unknown keys are reported", func() {
			_, err := Parse("player.volume", []string{"3"})
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
		})
	})

	Convey("Given values mpq cannot use", t, func() {
		Convey("A host that looks like a flag is rejected", func() {
			_, err := Parse(key.PlayerRemoteHost, []string{"-oProxyCommand=sh"})
			So(errors.Is(err, player.ErrUnsafeTarget), ShouldBeTrue)
		})

		Convey("Module names must be mplayer message modules", func() {
			_, err := Parse(key.PlayerModules, []string{"IDENTIFY", "cplayer"})
			So(err, ShouldNotBeNil)

			v, err := Parse(key.PlayerModules, []string{"IDENTIFY", "CPLAYER"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"IDENTIFY", "CPLAYER"})
		})

		Convey("Log levels must be known to logrus", func() {
			_, err := Parse(key.LogsLevel, []string{"loud"})
			So(err, ShouldNotBeNil)
			_, err = Parse(key.LogsLevel, []string{"debug"})
			So(err, ShouldBeNil)
		})

		Convey("Icon variants must exist", func() {
			_, err := Parse(key.IconsVariant, []string{"ascii"})
			So(err, ShouldNotBeNil)
		})

		Convey("History capacity must not be negative", func() {
			_, err := Parse(key.HistoryMaxEntries, []string{"-1"})
			So(err, ShouldNotBeNil)
		})

		Convey("A display must be a single word", func() {
			_, err := Parse(key.PlayerDisplay, []string{":0 rm"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("Given a misspelled key", t, func() {
		So(Suggest("player.remote_hots"), ShouldEqual, key.PlayerRemoteHost)
		So(Section(key.PlayerRemoteHost), ShouldEqual, "player")
	})
}
