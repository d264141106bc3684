package playlist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaylist(t *testing.T) {
	Convey("Given an empty playlist", t, func() {
		p := New()

		Convey("PeekNext is none", func() {
			So(p.PeekNext().IsAbsent(), ShouldBeTrue)
		})

		Convey("PopNext is a no-op", func() {
			So(func() { p.PopNext() }, ShouldNotPanic)
			So(p.Pending(), ShouldBeEmpty)
		})

		Convey("When two items are enqueued", func() {
			a, b := NewItem("a.mkv"), NewItem("b.mkv")
			p.Enqueue(a)
			p.Enqueue(b)

			Convey("They come out in FIFO order", func() {
				So(p.PeekNext().MustGet(), ShouldResemble, a)
				p.PopNext()
				So(p.PeekNext().MustGet(), ShouldResemble, b)
				p.PopNext()
				So(p.PeekNext().IsAbsent(), ShouldBeTrue)
			})

			Convey("Peeking does not remove", func() {
				p.PeekNext()
				p.PeekNext()
				So(p.Pending(), ShouldHaveLength, 2)
			})

			Convey("History is untouched by queue operations", func() {
				p.PopNext()
				So(p.History(), ShouldBeEmpty)
			})
		})

		Convey("RecordHistory appends in call order", func() {
			a, b := NewItem("a"), NewItem("b")
			p.RecordHistory(a)
			p.RecordHistory(b)
			So(p.History(), ShouldResemble, []Item{a, b})
		})

		Convey("Listeners fire on every enqueue in registration order", func() {
			var calls []string
			p.OnEnqueue(func() { calls = append(calls, "first") })
			p.OnEnqueue(func() { calls = append(calls, "second") })

			p.Enqueue(NewItem("x"))
			p.Enqueue(NewItem("y"))

			So(calls, ShouldResemble, []string{"first", "second", "first", "second"})
		})

		Convey("A listener may read the playlist without deadlocking", func() {
			var seen int
			p.OnEnqueue(func() { seen = len(p.Pending()) })
			p.Enqueue(NewItem("x"))
			So(seen, ShouldEqual, 1)
		})
	})
}

func TestItem(t *testing.T) {
	Convey("NewItem assigns unique identifiers", t, func() {
		a, b := NewItem("same"), NewItem("same")
		So(a.ID, ShouldNotBeEmpty)
		So(a.ID, ShouldNotEqual, b.ID)
		So(a.String(), ShouldEqual, "same")
	})

	Convey("String mentions the remote host", t, func() {
		i := Item{URI: "movie.mkv", Host: "tv"}
		So(i.String(), ShouldEqual, "movie.mkv (on tv)")
	})
}
