package codec

import (
	"encoding/binary"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Metadata is the optional block written immediately after the global
// header when FlagHasMetadata is set.
type Metadata struct {
	CreationTime     uint64
	ModificationTime uint64
	Creator          string
	Description      string
	Tags             map[string]string
}

// EncodeMetadata serializes m as:
//
//	creation_time (u64) | modification_time (u64) |
//	creator_len (u32) | creator_bytes |
//	description_len (u32) | description_bytes |
//	tag_count (u16) | tag_count x (key_len u16, key, value_len u16, value)
func EncodeMetadata(m Metadata) []byte {
	buf := make([]byte, 0, 8+8+4+len(m.Creator)+4+len(m.Description)+2)

	var tmp8 [8]byte
	binary.BigEndian.PutUint64(tmp8[:], m.CreationTime)
	buf = append(buf, tmp8[:]...)
	binary.BigEndian.PutUint64(tmp8[:], m.ModificationTime)
	buf = append(buf, tmp8[:]...)

	buf = appendLenPrefixed32(buf, []byte(m.Creator))
	buf = appendLenPrefixed32(buf, []byte(m.Description))

	var tmp2 [2]byte
	binary.BigEndian.PutUint16(tmp2[:], uint16(len(m.Tags)))
	buf = append(buf, tmp2[:]...)

	// Map iteration order is undefined; callers that need byte-exact
	// round trips across processes should not rely on tag ordering.
	for k, v := range m.Tags {
		buf = appendLenPrefixed16(buf, []byte(k))
		buf = appendLenPrefixed16(buf, []byte(v))
	}
	return buf
}

func appendLenPrefixed32(buf, data []byte) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(len(data)))
	buf = append(buf, tmp[:]...)
	return append(buf, data...)
}

func appendLenPrefixed16(buf, data []byte) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(data)))
	buf = append(buf, tmp[:]...)
	return append(buf, data...)
}

// DecodeMetadata parses a metadata block from the front of buf and
// returns the metadata plus the number of bytes consumed.
func DecodeMetadata(buf []byte) (Metadata, int, error) {
	var m Metadata
	off := 0

	need := func(n int) error {
		if len(buf)-off < n {
			return varcerr.Newf(varcerr.Truncated,
				"metadata block truncated at offset %(off)d, need %(n)d more bytes",
				"off", off, "n", n)
		}
		return nil
	}

	if err := need(16); err != nil {
		return m, 0, err
	}
	m.CreationTime = binary.BigEndian.Uint64(buf[off:])
	off += 8
	m.ModificationTime = binary.BigEndian.Uint64(buf[off:])
	off += 8

	creator, n, err := readLenPrefixed32(buf[off:])
	if err != nil {
		return m, 0, err
	}
	m.Creator = string(creator)
	off += n

	description, n, err := readLenPrefixed32(buf[off:])
	if err != nil {
		return m, 0, err
	}
	m.Description = string(description)
	off += n

	if err := need(2); err != nil {
		return m, 0, err
	}
	tagCount := binary.BigEndian.Uint16(buf[off:])
	off += 2

	if tagCount > 0 {
		m.Tags = make(map[string]string, tagCount)
	}
	for i := uint16(0); i < tagCount; i++ {
		key, n, err := readLenPrefixed16(buf[off:])
		if err != nil {
			return m, 0, err
		}
		off += n
		val, n, err := readLenPrefixed16(buf[off:])
		if err != nil {
			return m, 0, err
		}
		off += n
		m.Tags[string(key)] = string(val)
	}

	return m, off, nil
}

func readLenPrefixed32(buf []byte) ([]byte, int, error) {
	if len(buf) < 4 {
		return nil, 0, varcerr.New(varcerr.Truncated, "metadata length prefix truncated")
	}
	length := binary.BigEndian.Uint32(buf)
	if len(buf) < 4+int(length) {
		return nil, 0, varcerr.New(varcerr.Truncated, "metadata field body truncated")
	}
	return buf[4 : 4+length], 4 + int(length), nil
}

func readLenPrefixed16(buf []byte) ([]byte, int, error) {
	if len(buf) < 2 {
		return nil, 0, varcerr.New(varcerr.Truncated, "metadata tag length prefix truncated")
	}
	length := binary.BigEndian.Uint16(buf)
	if len(buf) < 2+int(length) {
		return nil, 0, varcerr.New(varcerr.Truncated, "metadata tag body truncated")
	}
	return buf[2 : 2+length], 2 + int(length), nil
}
