package varc

import (
	"time"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/crypto"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// EntryType identifies what kind of filesystem object an Entry records.
type EntryType int

const (
	FileEntry EntryType = iota
	DirectoryEntry
	SymlinkEntry
)

// Entry is the in-memory representation of a single archived object.
// Data holds either the *stored* bytes (possibly encrypted and/or
// compressed) after Seal, or the plaintext after SetData or
// Pipeline.Open; the unexported sealed field records which. Checksum is always
// the SHA-256 of the original plaintext and is computed once, at
// creation time; the pipeline must never recompute it.
type Entry struct {
	Path             string
	Type             EntryType
	OriginalSize     uint64
	StoredSize       uint64
	FileType         codec.FileType
	Flags            uint32
	CreationTime     time.Time
	ModificationTime time.Time
	Checksum         [32]byte
	Data             []byte

	// sealed reports whether Data currently holds stored (possibly
	// compressed/encrypted) bytes rather than plaintext. Seal sets it;
	// Open and SetData clear it.
	sealed bool
}

// NewEmptyEntry returns a zero-value entry for path, ready for SetData.
func NewEmptyEntry(path string) (*Entry, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	now := time.Now()
	return &Entry{
		Path:             path,
		CreationTime:     now,
		ModificationTime: now,
	}, nil
}

// NewEntryFromBytes builds a FILE entry from data, computing its
// checksum and detected file type.
func NewEntryFromBytes(path string, data []byte, typ EntryType) (*Entry, error) {
	e, err := NewEmptyEntry(path)
	if err != nil {
		return nil, err
	}
	e.Type = typ
	e.SetData(data)
	return e, nil
}

// NewMetadataOnlyEntry builds an entry with no data payload, e.g. a
// directory marker.
func NewMetadataOnlyEntry(path string, typ EntryType, originalSize uint64, fileType codec.FileType) (*Entry, error) {
	e, err := NewEmptyEntry(path)
	if err != nil {
		return nil, err
	}
	e.Type = typ
	e.OriginalSize = originalSize
	e.FileType = fileType
	switch typ {
	case DirectoryEntry:
		e.Flags |= codec.EntryFlagDirectory
	case SymlinkEntry:
		e.Flags |= codec.EntryFlagSymlink
	}
	return e, nil
}

func validatePath(path string) error {
	if len(path) == 0 {
		return varcerr.New(varcerr.InvalidArgument, "path must not be empty")
	}
	if len([]byte(path)) > codec.MaxPathLength {
		return varcerr.Newf(varcerr.InvalidArgument,
			"path exceeds %(max)d bytes", "max", codec.MaxPathLength)
	}
	return nil
}

// SetData records data as this entry's *original* plaintext bytes,
// recomputing OriginalSize, StoredSize (equal to len(data) until the
// pipeline runs), Checksum, and, if FileType is still UNKNOWN,
// detecting a FileType from content. Ownership of data moves to the
// entry; callers should not mutate it afterward.
func (e *Entry) SetData(data []byte) {
	e.Data = data
	e.OriginalSize = uint64(len(data))
	e.StoredSize = uint64(len(data))
	sum := crypto.New().SHA256(data)
	e.Checksum = sum
	if e.FileType == codec.Unknown {
		e.FileType = codec.Detect(data)
	}
	e.ModificationTime = time.Now()
	e.sealed = false
}

// ClearData secure-wipes the entry's data buffer and releases it.
func (e *Entry) ClearData() {
	if e.Data == nil {
		return
	}
	crypto.SecureWipe(e.Data)
	e.Data = nil
}

func (e *Entry) IsCompressed() bool { return e.Flags&codec.EntryFlagCompressed != 0 }
func (e *Entry) IsEncrypted() bool  { return e.Flags&codec.EntryFlagEncrypted != 0 }
func (e *Entry) IsDirectory() bool  { return e.Type == DirectoryEntry }
func (e *Entry) IsSymlink() bool    { return e.Type == SymlinkEntry }
func (e *Entry) IsHidden() bool     { return e.Flags&codec.EntryFlagHidden != 0 }
func (e *Entry) IsReadonly() bool   { return e.Flags&codec.EntryFlagReadonly != 0 }

// TotalSerializedSize returns how many on-disk bytes this entry's record
// occupies: header + path + stored data + checksum.
func (e *Entry) TotalSerializedSize() uint64 {
	return uint64(codec.EntryHeaderSize) + uint64(len(e.Path)) + e.StoredSize + uint64(codec.ChecksumSize)
}

func (e *Entry) header() codec.EntryHeader {
	return codec.EntryHeader{
		PathLength:   uint16(len(e.Path)),
		OriginalSize: e.OriginalSize,
		StoredSize:   e.StoredSize,
		FileType:     uint32(e.FileType),
		Flags:        e.Flags,
	}
}
