package codec

import "bytes"

// FileType is the magic-byte classification tag stored in an entry
// header.
type FileType uint32

const (
	Unknown FileType = iota
	Text
	Binary
	Image
	Audio
	Video
	Document
	Archive
)

func (t FileType) String() string {
	switch t {
	case Text:
		return "TEXT"
	case Binary:
		return "BINARY"
	case Image:
		return "IMAGE"
	case Audio:
		return "AUDIO"
	case Video:
		return "VIDEO"
	case Document:
		return "DOCUMENT"
	case Archive:
		return "ARCHIVE"
	default:
		return "UNKNOWN"
	}
}

// Detect classifies data by magic bytes, falling back to a printable-
// ASCII ratio heuristic over the first 256 bytes. Rule order matches
// the original VaultArchive FileType::detect implementation.
func Detect(data []byte) FileType {
	if len(data) < 4 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return Image
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return Image
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return Image
	case bytes.HasPrefix(data, []byte("JFIF")), bytes.HasPrefix(data, []byte("Exif")):
		return Image
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return Image
	case bytes.HasPrefix(data, []byte("ID3")),
		bytes.HasPrefix(data, []byte{0xFF, 0xFB}),
		bytes.HasPrefix(data, []byte{0xFF, 0xFA}),
		bytes.HasPrefix(data, []byte("OggS")):
		return Audio
	case len(data) > 7 && data[0] == 0 && data[1] == 0 && data[2] == 0 &&
		data[4] == 'f' && data[5] == 't' && data[6] == 'y' && data[7] == 'p':
		return Video
	case bytes.HasPrefix(data, []byte("%PDF")):
		return Document
	case bytes.HasPrefix(data, []byte("PK\x03\x04")), bytes.HasPrefix(data, []byte("PK\x05\x06")):
		return Archive
	}

	checkSize := len(data)
	if checkSize > 256 {
		checkSize = 256
	}
	printable := 0
	for _, b := range data[:checkSize] {
		if (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' {
			printable++
		}
	}
	if float64(printable) > float64(checkSize)*0.9 {
		return Text
	}
	return Binary
}
