package varc

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
)

func TestEntrySetData(t *testing.T) {
	t.Parallel()

	Convey("SetData", t, func() {
		e, err := NewEmptyEntry("readme.txt")
		So(err, ShouldBeNil)

		e.SetData([]byte("plain ascii text, mostly"))
		So(e.OriginalSize, ShouldEqual, uint64(len("plain ascii text, mostly")))
		So(e.StoredSize, ShouldEqual, e.OriginalSize)
		So(e.FileType, ShouldEqual, codec.Text)
		So(e.IsEncrypted(), ShouldBeFalse)
		So(e.IsCompressed(), ShouldBeFalse)
	})

	Convey("TotalSerializedSize accounts for header, path, data, checksum", t, func() {
		e, err := NewEntryFromBytes("a.bin", []byte{1, 2, 3}, FileEntry)
		So(err, ShouldBeNil)
		want := uint64(codec.EntryHeaderSize) + uint64(len("a.bin")) + 3 + uint64(codec.ChecksumSize)
		So(e.TotalSerializedSize(), ShouldEqual, want)
	})

	Convey("path length is bounded", t, func() {
		_, err := NewEmptyEntry(strings.Repeat("x", codec.MaxPathLength+1))
		So(err, ShouldNotBeNil)
	})

	Convey("empty path is rejected", t, func() {
		_, err := NewEmptyEntry("")
		So(err, ShouldNotBeNil)
	})
}

func TestNewMetadataOnlyEntry(t *testing.T) {
	t.Parallel()

	Convey("directory marker carries no data but sets the directory flag", t, func() {
		e, err := NewMetadataOnlyEntry("photos/", DirectoryEntry, 0, codec.Unknown)
		So(err, ShouldBeNil)
		So(e.IsDirectory(), ShouldBeTrue)
		So(e.Data, ShouldBeNil)
	})
}
