package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// DeriveKey derives a 32-byte AES-256 key from password and salt via
// PBKDF2-HMAC-SHA256, grounded on the same wiring pattern used by
// jacobsa-comeback's pbkdf2KeyDeriver.
func (p *Provider) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, varcerr.New(varcerr.InvalidArgument, "password must not be empty")
	}
	if p.iterations() < MinIterations {
		return nil, varcerr.Newf(varcerr.InvalidArgument,
			"iteration count %(n)d is below the minimum %(min)d", "n", p.iterations(), "min", MinIterations)
	}
	return pbkdf2.Key([]byte(password), salt, p.iterations(), KeySize, sha256.New), nil
}
