package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/player"
	"github.com/mpq-cli/mpq/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPlayerBinary(t *testing.T) {
	Convey("Given local playback", t, func() {
		Convey("An executable in PATH resolves to its absolute path", func() {
			path := playerBinary(player.Options{Binary: "sh"})
			So(filepath.IsAbs(path), ShouldBeTrue)
			So(filepath.Base(path), ShouldEqual, "sh")
		})

		Convey("A missing executable is reported", func() {
			So(playerBinary(player.Options{Binary: "mpq-no-such-player"}), ShouldEqual, "mpq-no-such-player not found in PATH")
		})
	})

	Convey("Given remote playback", t, func() {
		path := playerBinary(player.Options{Remote: true, RemoteHost: "tv"})

		Convey("Only ssh is resolved locally", func() {
			So(path, ShouldContainSubstring, "ssh")
			So(path, ShouldNotContainSubstring, "mplayer not found")
		})
	})
}

func TestPrintLocations(t *testing.T) {
	Convey("Given the default locations", t, func() {
		var out bytes.Buffer
		printLocations(&out, player.Options{Binary: "mpq-no-such-player"})
		text := out.String()

		Convey("Files and the player are listed, temp is hidden", func() {
			So(text, ShouldContainSubstring, where.Config())
			So(text, ShouldContainSubstring, where.History())
			So(text, ShouldContainSubstring, "--player")
			So(text, ShouldContainSubstring, "mpq-no-such-player not found in PATH")
			So(text, ShouldNotContainSubstring, "--temp")
		})
	})
}
