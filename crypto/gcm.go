package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// GCMNonceSize and GCMTagSize describe the AES-256-GCM primitive offered
// for future use. The current pipeline always uses Encrypt/Decrypt
// (CBC); nothing in this module calls EncryptGCM/DecryptGCM today.
const (
	GCMNonceSize = 12
	GCMTagSize   = 16
)

// EncryptGCM performs AES-256-GCM authenticated encryption, returning
// nonce-prefixed ciphertext (nonce || ciphertext || tag).
func (p *Provider) EncryptGCM(key, plaintext, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building AES cipher")
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, GCMNonceSize)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building GCM mode")
	}
	nonce, err := p.RandomBytes(GCMNonceSize)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, additionalData), nil
}

// DecryptGCM is the inverse of EncryptGCM.
func (p *Provider) DecryptGCM(key, nonceAndCiphertext, additionalData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building AES cipher")
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, GCMNonceSize)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building GCM mode")
	}
	if len(nonceAndCiphertext) < GCMNonceSize {
		return nil, varcerr.New(varcerr.DecryptFailure, "wrong password or corrupted data")
	}
	nonce, ciphertext := nonceAndCiphertext[:GCMNonceSize], nonceAndCiphertext[GCMNonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, varcerr.New(varcerr.DecryptFailure, "wrong password or corrupted data")
	}
	return plaintext, nil
}
