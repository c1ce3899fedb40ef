package varc

import (
	"github.com/luci/luci-go/common/data/stringset"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Open reads the archive at path in full and decodes its entries. If
// the archive is encrypted, password must be the correct passphrase;
// supplying one for an unencrypted archive is an error, and omitting
// one for an encrypted archive fails with PasswordRequired. Every
// entry's checksum is verified eagerly, since a linear format with no
// table of contents has no cheaper way to confirm integrity short of
// reading it all anyway.
func Open(path, password string, opts ...Option) (*Archive, error) {
	a := newArchive(opts...)
	a.Path = path

	raw, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.IoFailure, "reading archive")
	}

	if len(raw) < codec.GlobalHeaderSize {
		return nil, varcerr.New(varcerr.Truncated, "archive shorter than global header")
	}
	header, err := codec.DecodeGlobalHeader(raw[:codec.GlobalHeaderSize])
	if err != nil {
		return nil, err
	}
	a.header = header
	off := codec.GlobalHeaderSize

	if header.Encrypted() {
		if password == "" {
			return nil, varcerr.New(varcerr.PasswordRequired, "archive is encrypted")
		}
		key, err := a.crypto.DeriveKey(password, header.Salt[:])
		if err != nil {
			return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "deriving key")
		}
		a.pipeline.Key = key
		a.pipeline.IV = header.IV[:]
		a.password = password
	} else if password != "" {
		return nil, varcerr.New(varcerr.InvalidArgument, "password supplied for an unencrypted archive")
	}

	if header.HasMetadata() {
		m, n, err := codec.DecodeMetadata(raw[off:])
		if err != nil {
			return nil, varcerr.Annotate(err, varcerr.MalformedHeader, "decoding metadata block")
		}
		a.metadata = &m
		off += n
	}

	a.entries = make([]*Entry, 0, header.FileCount)
	a.paths = stringset.New(int(header.FileCount))

	for i := 0; i < int(header.FileCount); i++ {
		e, n, err := decodeRecord(raw[off:])
		if err != nil {
			return nil, varcerr.Annotate(err, varcerr.Truncated, "decoding entry record")
		}
		off += n

		if err := a.pipeline.Open(e); err != nil {
			return nil, err
		}

		// Tolerate a duplicate path in a foreign archive (first wins)
		// rather than failing the whole Open.
		a.paths.Add(e.Path)
		a.entries = append(a.entries, e)
		a.report(StageVerify, e.Path, i+1, int(header.FileCount))
	}

	a.state = StateClean
	return a, nil
}
