package codec

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	Convey("Detect", t, func() {
		Convey("PNG", func() {
			So(Detect([]byte("\x89PNG\r\n\x1a\nrest")), ShouldEqual, Image)
		})
		Convey("GIF", func() {
			So(Detect([]byte("GIF89a...")), ShouldEqual, Image)
		})
		Convey("JPEG", func() {
			So(Detect([]byte{0xFF, 0xD8, 0xFF, 0xE0}), ShouldEqual, Image)
		})
		Convey("PDF", func() {
			So(Detect([]byte("%PDF-1.4\n...")), ShouldEqual, Document)
		})
		Convey("ZIP", func() {
			So(Detect([]byte("PK\x03\x04rest")), ShouldEqual, Archive)
		})
		Convey("OggS audio", func() {
			So(Detect([]byte("OggS....")), ShouldEqual, Audio)
		})
		Convey("ISO-BMFF ftyp video", func() {
			So(Detect([]byte{0, 0, 0, 24, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}), ShouldEqual, Video)
		})
		Convey("mostly printable ASCII is TEXT", func() {
			So(Detect([]byte("hello\n")), ShouldEqual, Text)
		})
		Convey("mostly non-printable is BINARY", func() {
			data := make([]byte, 300)
			for i := range data {
				data[i] = byte(i % 256)
			}
			So(Detect(data), ShouldEqual, Binary)
		})
		Convey("too short is UNKNOWN", func() {
			So(Detect([]byte{1, 2}), ShouldEqual, Unknown)
		})
		Convey("String", func() {
			So(Text.String(), ShouldEqual, "TEXT")
			So(FileType(99).String(), ShouldEqual, "UNKNOWN")
		})
		Convey("long text body stays TEXT", func() {
			text := strings.Repeat("the quick brown fox\n", 50)
			So(Detect([]byte(text)), ShouldEqual, Text)
		})
	})
}
