package codec

import (
	"encoding/binary"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Signature is the four magic bytes at the start of every VARC archive.
const Signature = "VARC"

// VersionMajor/VersionMinor identify the current on-disk format revision.
const (
	VersionMajor uint16 = 0
	VersionMinor uint16 = 3
)

// Version is the packed (major<<8 | minor) value written to the header.
const Version = (VersionMajor << 8) | VersionMinor

// Archive-level flag bits (GlobalHeader.Flags).
const (
	FlagEncrypted   uint16 = 1 << 0
	FlagCompressed  uint16 = 1 << 1
	FlagHasMetadata uint16 = 1 << 2
)

// Fixed field widths.
const (
	SaltSize = 32
	IVSize   = 16

	// GlobalHeaderSize is the number of bytes a GlobalHeader always
	// occupies on disk: 4 (signature) + 2 (version) + 2 (flags) +
	// 4 (file_count) + 32 (salt) + 16 (iv) + 8 (reserved).
	GlobalHeaderSize = 4 + 2 + 2 + 4 + SaltSize + IVSize + 8
)

// GlobalHeader is the 68-byte fixed header at offset 0 of every archive.
type GlobalHeader struct {
	Version   uint16
	Flags     uint16
	FileCount uint32
	Salt      [SaltSize]byte
	IV        [IVSize]byte
	Reserved  uint64
}

// NewGlobalHeader returns a zeroed header stamped with the current
// signature and version, as a freshly-created archive would have.
func NewGlobalHeader() GlobalHeader {
	return GlobalHeader{Version: Version}
}

func (h GlobalHeader) Encrypted() bool   { return h.Flags&FlagEncrypted != 0 }
func (h GlobalHeader) Compressed() bool  { return h.Flags&FlagCompressed != 0 }
func (h GlobalHeader) HasMetadata() bool { return h.Flags&FlagHasMetadata != 0 }

// EncodeGlobalHeader writes h in the fixed 68-byte big-endian layout.
func EncodeGlobalHeader(h GlobalHeader) []byte {
	buf := make([]byte, GlobalHeaderSize)
	copy(buf[0:4], Signature)
	binary.BigEndian.PutUint16(buf[4:6], h.Version)
	binary.BigEndian.PutUint16(buf[6:8], h.Flags)
	binary.BigEndian.PutUint32(buf[8:12], h.FileCount)
	copy(buf[12:12+SaltSize], h.Salt[:])
	copy(buf[12+SaltSize:12+SaltSize+IVSize], h.IV[:])
	binary.BigEndian.PutUint64(buf[12+SaltSize+IVSize:], h.Reserved)
	return buf
}

// DecodeGlobalHeader parses the first GlobalHeaderSize bytes of buf.
// It fails with varcerr.MalformedHeader if buf is short or the
// signature doesn't match; an unrecognized version is accepted (the
// format is additive within a major version) but a newer major version
// than this codec understands is rejected.
func DecodeGlobalHeader(buf []byte) (GlobalHeader, error) {
	var h GlobalHeader
	if len(buf) < GlobalHeaderSize {
		return h, varcerr.Newf(varcerr.MalformedHeader,
			"global header short read: got %(got)d bytes, want %(want)d",
			"got", len(buf), "want", GlobalHeaderSize)
	}
	if string(buf[0:4]) != Signature {
		return h, varcerr.Newf(varcerr.MalformedHeader,
			"bad signature %(sig)q", "sig", string(buf[0:4]))
	}
	h.Version = binary.BigEndian.Uint16(buf[4:6])
	if major := h.Version >> 8; major > VersionMajor {
		return h, varcerr.Newf(varcerr.MalformedHeader,
			"unsupported major version %(major)d", "major", major)
	}
	h.Flags = binary.BigEndian.Uint16(buf[6:8])
	h.FileCount = binary.BigEndian.Uint32(buf[8:12])
	copy(h.Salt[:], buf[12:12+SaltSize])
	copy(h.IV[:], buf[12+SaltSize:12+SaltSize+IVSize])
	h.Reserved = binary.BigEndian.Uint64(buf[12+SaltSize+IVSize:])
	return h, nil
}
