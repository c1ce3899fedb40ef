package varc

import (
	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/crypto"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// unsealAll reverts every entry to plaintext under the archive's
// current pipeline state. It's the common first step of Lock, Unlock,
// and ChangePassword: each of those needs every entry in plaintext
// before it can reseal under a new key.
func (a *Archive) unsealAll() error {
	for _, e := range a.entries {
		if e.Data == nil || !e.sealed {
			continue
		}
		if err := a.pipeline.Open(e); err != nil {
			return err
		}
	}
	return nil
}

// resealAll reseals every entry under wantEncrypt, preserving each
// entry's own compression flag rather than a single archive-wide
// value, since compression is chosen per Add* call, not per archive.
func (a *Archive) resealAll(wantEncrypt bool) error {
	for _, e := range a.entries {
		if e.Data == nil {
			continue
		}
		wantCompress := e.IsCompressed()
		e.sealed = false
		if err := a.pipeline.Seal(e, wantEncrypt, wantCompress); err != nil {
			return err
		}
	}
	return nil
}

// Lock turns on whole-archive encryption under password. It is an
// error to call on an archive that is already encrypted; use
// ChangePassword instead.
func (a *Archive) Lock(password string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if a.header.Encrypted() {
		return varcerr.New(varcerr.InvalidArgument, "archive is already locked; use ChangePassword")
	}
	if password == "" {
		return varcerr.New(varcerr.InvalidArgument, "password must not be empty")
	}

	if err := a.unsealAll(); err != nil {
		return err
	}

	salt, err := a.crypto.GenerateSalt()
	if err != nil {
		return err
	}
	iv, err := a.crypto.GenerateIV()
	if err != nil {
		return err
	}
	key, err := a.crypto.DeriveKey(password, salt)
	if err != nil {
		return varcerr.Annotate(err, varcerr.CryptoFailure, "deriving key")
	}

	copy(a.header.Salt[:], salt)
	copy(a.header.IV[:], iv)
	a.header.Flags |= codec.FlagEncrypted
	a.pipeline.Key = key
	a.pipeline.IV = iv
	a.password = password

	if err := a.resealAll(true); err != nil {
		return err
	}
	a.markModified()
	return nil
}

// Unlock removes whole-archive encryption, given the current correct
// password. Every entry is decrypted and rewritten in plaintext form.
func (a *Archive) Unlock(password string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if !a.header.Encrypted() {
		return varcerr.New(varcerr.InvalidArgument, "archive is not locked")
	}
	if password != a.password {
		return varcerr.New(varcerr.PasswordRequired, "wrong password")
	}

	if err := a.unsealAll(); err != nil {
		return err
	}

	a.header.Flags &^= codec.FlagEncrypted
	crypto.SecureWipe(a.pipeline.Key)
	a.pipeline.Key = nil
	a.pipeline.IV = nil
	a.password = ""
	var zero [codec.SaltSize]byte
	var zeroIV [codec.IVSize]byte
	a.header.Salt = zero
	a.header.IV = zeroIV

	if err := a.resealAll(false); err != nil {
		return err
	}
	a.markModified()
	return nil
}

// ChangePassword re-derives the archive's key from newPassword after
// verifying oldPassword, immediately re-encrypting every entry so only
// the new key is ever valid at rest.
func (a *Archive) ChangePassword(oldPassword, newPassword string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if !a.header.Encrypted() {
		return varcerr.New(varcerr.InvalidArgument, "archive is not locked")
	}
	if oldPassword != a.password {
		return varcerr.New(varcerr.PasswordRequired, "wrong password")
	}
	if newPassword == "" {
		return varcerr.New(varcerr.InvalidArgument, "new password must not be empty")
	}

	if err := a.unsealAll(); err != nil {
		return err
	}

	salt, err := a.crypto.GenerateSalt()
	if err != nil {
		return err
	}
	iv, err := a.crypto.GenerateIV()
	if err != nil {
		return err
	}
	key, err := a.crypto.DeriveKey(newPassword, salt)
	if err != nil {
		return varcerr.Annotate(err, varcerr.CryptoFailure, "deriving key")
	}

	crypto.SecureWipe(a.pipeline.Key)
	copy(a.header.Salt[:], salt)
	copy(a.header.IV[:], iv)
	a.pipeline.Key = key
	a.pipeline.IV = iv
	a.password = newPassword

	if err := a.resealAll(true); err != nil {
		return err
	}
	a.markModified()
	return nil
}
