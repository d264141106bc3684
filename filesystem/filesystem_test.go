package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAPI(t *testing.T) {
	Convey("Given the filesystem API", t, func() {
		Convey("It defaults to the OS backend", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be switched to memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()
		fs := GacheFs{}

		Convey("MkdirAll and OpenFile write through to it", func() {
			So(fs.MkdirAll("/state/mpq", os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile("/state/mpq/history.json", os.O_CREATE|os.O_RDWR, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("[]"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/state/mpq/history.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[]")
		})
	})
}
