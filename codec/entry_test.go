package codec

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEntryHeader(t *testing.T) {
	t.Parallel()

	Convey("EntryHeader", t, func() {
		Convey("round trip", func() {
			h := EntryHeader{
				PathLength:   9,
				OriginalSize: 6,
				StoredSize:   6,
				FileType:     uint32(Text),
				Flags:        EntryFlagCompressed | EntryFlagEncrypted,
			}
			buf := EncodeEntryHeader(h)
			So(len(buf), ShouldEqual, EntryHeaderSize)

			got, err := DecodeEntryHeader(buf)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, h)
			So(got.Compressed(), ShouldBeTrue)
			So(got.Encrypted(), ShouldBeTrue)
			So(got.Directory(), ShouldBeFalse)
		})

		Convey("short buffer", func() {
			_, err := DecodeEntryHeader(make([]byte, EntryHeaderSize-1))
			So(err, ShouldNotBeNil)
		})

		Convey("fixed size is 26 bytes", func() {
			So(EntryHeaderSize, ShouldEqual, 26)
		})
	})
}
