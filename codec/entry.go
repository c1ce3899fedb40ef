package codec

import (
	"encoding/binary"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// MaxPathLength is the largest path VARC will ever write; it is the
// ceiling the 16-bit on-disk path_length field can express.
const MaxPathLength = 65535

// Per-entry flag bits (EntryHeader.Flags).
const (
	EntryFlagCompressed uint32 = 1 << 0
	EntryFlagEncrypted  uint32 = 1 << 1
	EntryFlagDirectory  uint32 = 1 << 2
	EntryFlagSymlink    uint32 = 1 << 3
	EntryFlagHidden     uint32 = 1 << 4
	EntryFlagReadonly   uint32 = 1 << 5
)

// EntryHeaderSize is the fixed size of an entry header: path_length(2) +
// original_size(8) + stored_size(8) + file_type(4) + flags(4).
const EntryHeaderSize = 2 + 8 + 8 + 4 + 4

// ChecksumSize is the width of the SHA-256 checksum trailing each entry
// record.
const ChecksumSize = 32

// EntryHeader precedes a path and stored payload in an on-disk entry
// record.
type EntryHeader struct {
	PathLength   uint16
	OriginalSize uint64
	StoredSize   uint64
	FileType     uint32
	Flags        uint32
}

func (h EntryHeader) Compressed() bool { return h.Flags&EntryFlagCompressed != 0 }
func (h EntryHeader) Encrypted() bool  { return h.Flags&EntryFlagEncrypted != 0 }
func (h EntryHeader) Directory() bool  { return h.Flags&EntryFlagDirectory != 0 }
func (h EntryHeader) Symlink() bool    { return h.Flags&EntryFlagSymlink != 0 }

// EncodeEntryHeader writes h in the fixed 26-byte big-endian layout.
func EncodeEntryHeader(h EntryHeader) []byte {
	buf := make([]byte, EntryHeaderSize)
	binary.BigEndian.PutUint16(buf[0:2], h.PathLength)
	binary.BigEndian.PutUint64(buf[2:10], h.OriginalSize)
	binary.BigEndian.PutUint64(buf[10:18], h.StoredSize)
	binary.BigEndian.PutUint32(buf[18:22], h.FileType)
	binary.BigEndian.PutUint32(buf[22:26], h.Flags)
	return buf
}

// DecodeEntryHeader parses the first EntryHeaderSize bytes of buf.
func DecodeEntryHeader(buf []byte) (EntryHeader, error) {
	var h EntryHeader
	if len(buf) < EntryHeaderSize {
		return h, varcerr.Newf(varcerr.MalformedHeader,
			"entry header short read: got %(got)d bytes, want %(want)d",
			"got", len(buf), "want", EntryHeaderSize)
	}
	h.PathLength = binary.BigEndian.Uint16(buf[0:2])
	h.OriginalSize = binary.BigEndian.Uint64(buf[2:10])
	h.StoredSize = binary.BigEndian.Uint64(buf[10:18])
	h.FileType = binary.BigEndian.Uint32(buf[18:22])
	h.Flags = binary.BigEndian.Uint32(buf[22:26])
	return h, nil
}
