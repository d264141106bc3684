package output

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildMetadata(t *testing.T) {
	Convey("Flat IDENTIFY keys map to top-level entries", t, func() {
		md := BuildMetadata([]string{"ID_TITLE=Foo", "ID_ARTIST=Bar"})
		So(md, ShouldResemble, Metadata{"title": "Foo", "artist": "Bar"})
	})

	Convey("Segments nest", t, func() {
		md := BuildMetadata([]string{"ID_VIDEO_WIDTH=640", "ID_VIDEO_HEIGHT=480", "ID_AUDIO_CODEC=mpg123"})
		So(md, ShouldResemble, Metadata{
			"video": Metadata{"width": "640", "height": "480"},
			"audio": Metadata{"codec": "mpg123"},
		})
		So(md.String("video", "width").MustGet(), ShouldEqual, "640")
	})

	Convey("Last write wins", t, func() {
		md := BuildMetadata([]string{"ID_LENGTH=1.00", "ID_LENGTH=2.00"})
		So(md["length"], ShouldEqual, "2.00")

		Convey("including a leaf replaced by a map", func() {
			md := BuildMetadata([]string{"ID_CLIP=x", "ID_CLIP_INFO=y"})
			So(md, ShouldResemble, Metadata{"clip": Metadata{"info": "y"}})
		})

		Convey("and a map replaced by a leaf", func() {
			md := BuildMetadata([]string{"ID_CLIP_INFO=y", "ID_CLIP=x"})
			So(md, ShouldResemble, Metadata{"clip": "x"})
		})
	})

	Convey("Keys are case-insensitive and only a leading id is dropped", t, func() {
		md := BuildMetadata([]string{"id_Demuxer=lavfpref", "VIDEO_ID=3"})
		So(md, ShouldResemble, Metadata{"demuxer": "lavfpref", "video": Metadata{"id": "3"}})
	})

	Convey("Values keep everything after the first equals sign", t, func() {
		md := BuildMetadata([]string{"ID_CLIP_INFO_VALUE0=a=b"})
		So(md.String("clip", "info", "value0").MustGet(), ShouldEqual, "a=b")
	})

	Convey("Malformed lines are skipped", t, func() {
		md := BuildMetadata([]string{"no equals here", "ID_=orphan", "=x"})
		So(md, ShouldBeEmpty)
	})

	Convey("String reports missing paths as none", t, func() {
		md := BuildMetadata([]string{"ID_TITLE=Foo"})
		So(md.String("artist").IsAbsent(), ShouldBeTrue)
		So(md.String("title", "deeper").IsAbsent(), ShouldBeTrue)
		So(md.String().IsAbsent(), ShouldBeTrue)
	})
}
