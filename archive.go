package varc

import (
	"github.com/luci/luci-go/common/data/stringset"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/crypto"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// State tracks where an Archive sits in its Create/Open -> mutate ->
// Save lifecycle, covering in-place mutation rather than a single
// read-then-close pass.
type State int

const (
	// StateClosed is the zero value: no archive is loaded.
	StateClosed State = iota
	// StateClean means the in-memory entries match what's on disk.
	StateClean
	// StateModified means AddFile/RemoveEntry/Lock/etc. have run since
	// the last Save, and the on-disk file no longer matches.
	StateModified
)

// Archive mediates between callers and the Pipeline: it owns the entry
// list, the archive-wide crypto material, and the optional metadata
// block, and is responsible for keeping FileCount and the duplicate-
// path index consistent as entries are added and removed.
type Archive struct {
	Path     string
	header   codec.GlobalHeader
	metadata *codec.Metadata

	entries []*Entry
	paths   stringset.Set

	pipeline *Pipeline
	crypto   *crypto.Provider

	// password, if non-empty, is the passphrase used to derive
	// pipeline.Key from header.Salt. It is cleared by Close.
	password string

	state State
	fs    FileSystem

	progress      ProgressFunc
	compressLevel int
}

func newArchive(opts ...Option) *Archive {
	a := &Archive{
		header:        codec.NewGlobalHeader(),
		paths:         stringset.New(0),
		pipeline:      NewPipeline(),
		crypto:        crypto.New(),
		fs:            OSFileSystem{},
		compressLevel: 6,
	}
	for _, o := range opts {
		o(a)
	}
	a.pipeline.CompressLevel = a.compressLevel
	return a
}

// Entries returns the archive's entries in on-disk order. The returned
// slice must not be mutated by the caller.
func (a *Archive) Entries() []*Entry { return a.entries }

// Len reports the current number of entries.
func (a *Archive) Len() int { return len(a.entries) }

// IsEncrypted reports whether this archive stores encrypted entries.
func (a *Archive) IsEncrypted() bool { return a.header.Encrypted() }

// IsModified reports whether there are unsaved changes.
func (a *Archive) IsModified() bool { return a.state == StateModified }

// Metadata returns the archive's optional metadata block, or nil if
// none is set.
func (a *Archive) Metadata() *codec.Metadata { return a.metadata }

// SetMetadata installs m as the archive's metadata block and marks the
// archive modified. Passing nil removes the block entirely.
func (a *Archive) SetMetadata(m *codec.Metadata) {
	a.metadata = m
	a.markModified()
}

func (a *Archive) markModified() {
	if a.state != StateClosed {
		a.state = StateModified
	}
}

// Close auto-saves unsaved changes, then releases the archive's key
// material and entry data. A closed Archive must not be used again.
func (a *Archive) Close() error {
	var saveErr error
	if a.IsModified() {
		saveErr = a.Save()
	}
	for _, e := range a.entries {
		e.ClearData()
	}
	if a.pipeline.Key != nil {
		crypto.SecureWipe(a.pipeline.Key)
		a.pipeline.Key = nil
	}
	a.password = ""
	a.entries = nil
	a.paths = stringset.New(0)
	a.state = StateClosed
	return saveErr
}

func (a *Archive) requireOpen() error {
	if a.state == StateClosed {
		return varcerr.New(varcerr.InvalidArgument, "archive is not open")
	}
	return nil
}
