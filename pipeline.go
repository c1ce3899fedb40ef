package varc

import (
	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/compress"
	"github.com/Lotus-OS-Core/VaultArchive/crypto"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Pipeline transforms an entry's plaintext Data into on-disk bytes and
// back. The write direction always runs hash, then encrypt, then
// compress, in that fixed order; the read direction runs the exact
// reverse. The ordering is a deliberate archive-wide property, not a
// per-entry choice, so callers cannot reorder these steps.
type Pipeline struct {
	Crypto   *crypto.Provider
	Compress *compress.Provider

	// Key is the derived AES-256 key for this archive. Nil means the
	// archive carries no encryption.
	Key []byte
	// IV is the archive's single CBC initialization vector, taken from
	// the global header and reused for every entry.
	IV []byte

	// CompressLevel is the gzip level Seal uses when asked to compress.
	CompressLevel int
}

// NewPipeline returns a Pipeline wired to fresh crypto/compress
// providers.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Crypto:        crypto.New(),
		Compress:      compress.New(),
		CompressLevel: 6,
	}
}

// Seal transforms e.Data (plaintext) into its stored form in place,
// according to wantEncrypt/wantCompress, and updates e.Flags and
// e.StoredSize to match. e.Checksum must already reflect the plaintext
// (SetData computes it); Seal never touches it.
func (p *Pipeline) Seal(e *Entry, wantEncrypt, wantCompress bool) error {
	if e.Data == nil {
		return varcerr.New(varcerr.InvalidArgument, "entry has no data to seal")
	}
	if e.sealed {
		return nil
	}

	stored := e.Data
	e.Flags &^= codec.EntryFlagEncrypted | codec.EntryFlagCompressed

	if wantEncrypt {
		if len(p.Key) == 0 || len(p.IV) == 0 {
			return varcerr.New(varcerr.InvalidArgument, "encryption requested but pipeline has no key/iv")
		}
		ciphertext, err := p.Crypto.Encrypt(p.Key, p.IV, stored)
		if err != nil {
			return varcerr.Annotate(err, varcerr.CryptoFailure, "encrypting entry "+e.Path)
		}
		stored = ciphertext
		e.Flags |= codec.EntryFlagEncrypted
	}

	if wantCompress {
		res := p.Compress.Compress(stored, p.CompressLevel)
		if res.Error != nil {
			return varcerr.Annotate(res.Error, varcerr.CompressionFailure, "compressing entry "+e.Path)
		}
		stored = res.Data
		e.Flags |= codec.EntryFlagCompressed
	}

	e.Data = stored
	e.StoredSize = uint64(len(stored))
	e.sealed = true
	return nil
}

// Open is the inverse of Seal: it reconstructs plaintext from e.Data
// (currently holding the stored bytes) by decompressing, then
// decrypting, then verifying the recovered plaintext against
// e.Checksum. On success e.Data holds plaintext and StoredSize is left
// as-is (it still describes the on-disk form the entry was read from).
func (p *Pipeline) Open(e *Entry) error {
	if e.Data == nil {
		return varcerr.New(varcerr.InvalidArgument, "entry has no data to open")
	}

	plain := e.Data

	if e.IsCompressed() {
		res := p.Compress.Decompress(plain, 0)
		if res.Error != nil {
			return varcerr.Annotate(res.Error, varcerr.DecompressionFailure, "decompressing entry "+e.Path)
		}
		plain = res.Data
	}

	if e.IsEncrypted() {
		if len(p.Key) == 0 || len(p.IV) == 0 {
			return varcerr.New(varcerr.PasswordRequired, "archive is encrypted but no key was supplied")
		}
		decrypted, err := p.Crypto.Decrypt(p.Key, p.IV, plain)
		if err != nil {
			return err
		}
		plain = decrypted
	}

	if !p.Crypto.VerifyChecksum(plain, e.Checksum[:]) {
		return varcerr.New(varcerr.ChecksumMismatch, "checksum mismatch for entry "+e.Path)
	}

	e.Data = plain
	e.OriginalSize = uint64(len(plain))
	// e.Flags is left alone: it still records the entry's on-disk
	// policy (encrypted/compressed or not), which Save needs to reseal
	// this entry the same way if nothing else changes it. e.sealed is
	// the only thing that tracks whether Data is currently plaintext.
	e.sealed = false
	return nil
}
