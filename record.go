package varc

import (
	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// encodeRecord serializes e's on-disk record: header, path, stored
// payload, checksum, in that order, matching the layout doc.go
// describes.
func encodeRecord(e *Entry) []byte {
	h := e.header()
	hdr := codec.EncodeEntryHeader(h)

	buf := make([]byte, 0, len(hdr)+len(e.Path)+len(e.Data)+codec.ChecksumSize)
	buf = append(buf, hdr...)
	buf = append(buf, []byte(e.Path)...)
	buf = append(buf, e.Data...)
	buf = append(buf, e.Checksum[:]...)
	return buf
}

// decodeRecord parses one entry record from the front of buf, returning
// the built Entry and the number of bytes consumed. The entry's Data
// field holds the raw stored bytes (possibly compressed/encrypted);
// callers must run it through Pipeline.Open to recover plaintext.
func decodeRecord(buf []byte) (*Entry, int, error) {
	h, err := codec.DecodeEntryHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	off := codec.EntryHeaderSize

	need := int(h.PathLength) + int(h.StoredSize) + codec.ChecksumSize
	if len(buf)-off < need {
		return nil, 0, varcerr.Newf(varcerr.Truncated,
			"entry record truncated: need %(need)d more bytes, have %(have)d",
			"need", need, "have", len(buf)-off)
	}

	path := string(buf[off : off+int(h.PathLength)])
	off += int(h.PathLength)

	data := make([]byte, h.StoredSize)
	copy(data, buf[off:off+int(h.StoredSize)])
	off += int(h.StoredSize)

	var checksum [32]byte
	copy(checksum[:], buf[off:off+codec.ChecksumSize])
	off += codec.ChecksumSize

	typ := FileEntry
	switch {
	case h.Directory():
		typ = DirectoryEntry
	case h.Symlink():
		typ = SymlinkEntry
	}

	e := &Entry{
		Path:         path,
		Type:         typ,
		OriginalSize: h.OriginalSize,
		StoredSize:   h.StoredSize,
		FileType:     codec.FileType(h.FileType),
		Flags:        h.Flags,
		Checksum:     checksum,
		Data:         data,
	}
	return e, off, nil
}
