package crypto

import (
	"bufio"
	"crypto/sha256"
	"crypto/subtle"
	"io"
	"os"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// sha256FileChunk is the streaming read size used by SHA256File.
const sha256FileChunk = 64 * 1024

// SHA256 hashes data in one shot.
func (p *Provider) SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA256File streams path through SHA-256 in 64 KiB chunks without
// holding the whole file in memory.
func (p *Provider) SHA256File(path string) ([32]byte, error) {
	var sum [32]byte
	f, err := os.Open(path)
	if err != nil {
		return sum, varcerr.Annotate(err, varcerr.IoFailure, "opening file for hashing")
	}
	defer f.Close()

	h := sha256.New()
	r := bufio.NewReaderSize(f, sha256FileChunk)
	if _, err := io.Copy(h, r); err != nil {
		return sum, varcerr.Annotate(err, varcerr.IoFailure, "reading file for hashing")
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// VerifyChecksum reports whether sha256(data) equals expected, compared
// in constant time. A length mismatch is treated as "not equal" rather
// than an error.
func (p *Provider) VerifyChecksum(data []byte, expected []byte) bool {
	if len(expected) != sha256.Size {
		return false
	}
	got := sha256.Sum256(data)
	return subtle.ConstantTimeCompare(got[:], expected) == 1
}
