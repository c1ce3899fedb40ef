package crypto

import (
	"crypto/rand"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// RandomBytes returns n cryptographically random bytes from the CSPRNG.
func (p *Provider) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "reading random bytes")
	}
	return buf, nil
}

// GenerateSalt returns a fresh PBKDF2 salt.
func (p *Provider) GenerateSalt() ([]byte, error) {
	return p.RandomBytes(SaltSize)
}

// GenerateIV returns a fresh AES block-size initialization vector.
func (p *Provider) GenerateIV() ([]byte, error) {
	return p.RandomBytes(IVSize)
}
