package codec

import (
	"testing"

	. "github.com/luci/luci-go/common/testing/assertions"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalHeader(t *testing.T) {
	t.Parallel()

	Convey("GlobalHeader", t, func() {
		Convey("round trip", func() {
			h := NewGlobalHeader()
			h.Flags = FlagEncrypted | FlagCompressed
			h.FileCount = 3
			h.Salt[0] = 0xAB
			h.IV[15] = 0xCD
			h.Reserved = 0x0102030405060708

			buf := EncodeGlobalHeader(h)
			So(len(buf), ShouldEqual, GlobalHeaderSize)
			So(string(buf[0:4]), ShouldEqual, Signature)

			got, err := DecodeGlobalHeader(buf)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, h)
		})

		Convey("empty archive defaults", func() {
			h := NewGlobalHeader()
			buf := EncodeGlobalHeader(h)
			got, err := DecodeGlobalHeader(buf)
			So(err, ShouldBeNil)
			So(got.Version, ShouldEqual, Version)
			So(got.Flags, ShouldEqual, uint16(0))
			So(got.FileCount, ShouldEqual, uint32(0))
		})

		Convey("bad signature", func() {
			buf := EncodeGlobalHeader(NewGlobalHeader())
			buf[0] = 'X'
			_, err := DecodeGlobalHeader(buf)
			So(err, ShouldErrLike, "bad signature")
		})

		Convey("short buffer", func() {
			_, err := DecodeGlobalHeader(make([]byte, GlobalHeaderSize-1))
			So(err, ShouldErrLike, "short read")
		})

		Convey("reserved bits preserved verbatim", func() {
			h := NewGlobalHeader()
			h.Flags = 0x8000 // a reserved bit
			buf := EncodeGlobalHeader(h)
			got, err := DecodeGlobalHeader(buf)
			So(err, ShouldBeNil)
			So(got.Flags, ShouldEqual, h.Flags)
		})
	})
}
