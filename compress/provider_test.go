package compress

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
)

func TestCompressDecompress(t *testing.T) {
	t.Parallel()

	Convey("Compress/Decompress", t, func() {
		p := New()
		data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 200)

		Convey("round trip at every level", func() {
			for level := 0; level <= 9; level++ {
				res := p.Compress(data, level)
				So(res.Error, ShouldBeNil)
				So(res.OK, ShouldBeTrue)

				d := p.Decompress(res.Data, int64(len(data)))
				So(d.Error, ShouldBeNil)
				So(d.OK, ShouldBeTrue)
				So(d.Data, ShouldResemble, data)
			}
		})

		Convey("level 9 compresses repetitive data", func() {
			res := p.Compress(data, 9)
			So(res.CompressedSize, ShouldBeLessThan, res.OriginalSize)
			So(res.Ratio, ShouldBeLessThan, 1.0)
		})

		Convey("invalid level is rejected", func() {
			res := p.Compress(data, 10)
			So(res.Error, ShouldNotBeNil)
			So(res.OK, ShouldBeFalse)
		})

		Convey("size mismatch is detected", func() {
			res := p.Compress(data, 6)
			d := p.Decompress(res.Data, int64(len(data))+1)
			So(d.Error, ShouldNotBeNil)
			So(d.OK, ShouldBeFalse)
		})

		Convey("garbage input fails to decompress", func() {
			d := p.Decompress([]byte("not gzip data"), 0)
			So(d.Error, ShouldNotBeNil)
		})
	})
}

func TestIsCompressed(t *testing.T) {
	t.Parallel()

	Convey("IsCompressed", t, func() {
		p := New()
		res := p.Compress([]byte("hello"), 6)
		So(IsCompressed(res.Data), ShouldBeTrue)
		So(IsCompressed([]byte("plain text")), ShouldBeFalse)
	})
}

func TestOptimalLevel(t *testing.T) {
	t.Parallel()

	Convey("OptimalLevel", t, func() {
		So(OptimalLevel(codec.Text), ShouldEqual, 9)
		So(OptimalLevel(codec.Document), ShouldEqual, 9)
		So(OptimalLevel(codec.Audio), ShouldEqual, 1)
		So(OptimalLevel(codec.Video), ShouldEqual, 1)
		So(OptimalLevel(codec.Image), ShouldEqual, 6)
		So(OptimalLevel(codec.Unknown), ShouldEqual, 6)
	})
}
