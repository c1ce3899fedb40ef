package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// Encrypt performs AES-256-CBC encryption of plaintext under key/iv with
// PKCS#7 padding. Output length is always a multiple of the AES block
// size, specifically (len(plaintext)/16 + 1) * 16.
func (p *Provider) Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building AES cipher")
	}
	if len(iv) != aes.BlockSize {
		return nil, varcerr.Newf(varcerr.InvalidArgument,
			"iv must be %(want)d bytes, got %(got)d", "want", aes.BlockSize, "got", len(iv))
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt is the inverse of Encrypt. A wrong key, wrong IV, or corrupted
// ciphertext all surface as the same DecryptFailure, never distinguished,
// so an attacker can't use error text to confirm a guessed password
// byte-by-byte via padding oracle behavior.
func (p *Provider) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, varcerr.Annotate(err, varcerr.CryptoFailure, "building AES cipher")
	}
	if len(iv) != aes.BlockSize {
		return nil, varcerr.New(varcerr.DecryptFailure, "wrong password or corrupted data")
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, varcerr.New(varcerr.DecryptFailure, "wrong password or corrupted data")
	}

	plaintextPadded := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintextPadded, ciphertext)

	plaintext, err := pkcs7Unpad(plaintextPadded, aes.BlockSize)
	if err != nil {
		return nil, varcerr.New(varcerr.DecryptFailure, "wrong password or corrupted data")
	}
	return plaintext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(append([]byte{}, data...), padding...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, varcerr.New(varcerr.DecryptFailure, "invalid padded length")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, varcerr.New(varcerr.DecryptFailure, "invalid padding length")
	}
	padding := data[len(data)-padLen:]
	for _, b := range padding {
		if int(b) != padLen {
			return nil, varcerr.New(varcerr.DecryptFailure, "invalid padding bytes")
		}
	}
	return data[:len(data)-padLen], nil
}
