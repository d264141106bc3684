package util

import (
	"testing"

	"github.com/mpq-cli/mpq/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(0, "entry", "entries"), ShouldEqual, "0 entries")
		So(Quantify(2, "entry", "entries"), ShouldEqual, "2 entries")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(3, 9, 1), ShouldEqual, 9)
		So(Max(-1.5), ShouldEqual, -1.5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.WriteFile("/tmp/mpq/a.log", []byte("12345"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/tmp/mpq/sub/b.log", []byte("123"), 0o644), ShouldBeNil)

		Convey("DirSize sums the files", func() {
			size, err := DirSize("/tmp/mpq")
			So(err, ShouldBeNil)
			So(size, ShouldEqual, 8)
		})

		Convey("Delete removes a single file", func() {
			So(Delete("/tmp/mpq/a.log"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/mpq/a.log")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete removes a directory tree", func() {
			So(Delete("/tmp/mpq"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/mpq/sub/b.log")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete reports a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})

		Reset(filesystem.SetOsFs)
	})
}
