package varc

import (
	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Save seals every entry that still holds plaintext according to its own
// ENCRYPTED/COMPRESSED flags (entries already sealed are left as they
// are) and writes the whole archive to Path in one shot.
// It always rewrites from scratch rather than patching in place: the
// format has no free space to reclaim or append into, so there is
// nothing an incremental writer would save.
func (a *Archive) Save() error {
	if err := a.requireOpen(); err != nil {
		return err
	}

	for i, e := range a.entries {
		if e.Data != nil {
			if err := a.pipeline.Seal(e, e.IsEncrypted(), e.IsCompressed()); err != nil {
				return err
			}
		}
		a.report(StageSave, e.Path, i+1, len(a.entries))
	}

	if a.metadata != nil {
		a.header.Flags |= codec.FlagHasMetadata
	} else {
		a.header.Flags &^= codec.FlagHasMetadata
	}
	if len(a.entries) == 0 {
		a.header.Flags &^= codec.FlagEncrypted | codec.FlagCompressed
	}
	a.header.FileCount = uint32(len(a.entries))

	out := make([]byte, 0, codec.GlobalHeaderSize+4096)
	out = append(out, codec.EncodeGlobalHeader(a.header)...)
	if a.metadata != nil {
		out = append(out, codec.EncodeMetadata(*a.metadata)...)
	}
	for _, e := range a.entries {
		out = append(out, encodeRecord(e)...)
	}

	if err := a.fs.WriteFile(a.Path, out, 0o600); err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "writing archive")
	}

	a.state = StateClean
	return nil
}
