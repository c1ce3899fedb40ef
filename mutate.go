package varc

import (
	"path/filepath"

	"github.com/luci/luci-go/common/data/stringset"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// ensureCrypto lazily establishes the archive's single crypto state the
// first time a call asks to encrypt: it generates a fresh salt and IV,
// derives the key from co.Password, and writes both into the global
// header. Later calls that ask for encryption reuse this state and
// ignore their own Password field, matching Lock/ChangePassword's
// single-valid-key-at-rest rule.
func (a *Archive) ensureCrypto(co CreateOptions) error {
	if a.pipeline.Key != nil {
		return nil
	}
	if co.Password == "" {
		return varcerr.New(varcerr.PasswordRequired, "encryption requested but no password is set yet")
	}
	salt, err := a.crypto.GenerateSalt()
	if err != nil {
		return err
	}
	iv, err := a.crypto.GenerateIV()
	if err != nil {
		return err
	}
	key, err := a.crypto.DeriveKey(co.Password, salt)
	if err != nil {
		return varcerr.Annotate(err, varcerr.CryptoFailure, "deriving key")
	}
	copy(a.header.Salt[:], salt)
	copy(a.header.IV[:], iv)
	a.header.Flags |= codec.FlagEncrypted
	a.pipeline.Key = key
	a.pipeline.IV = iv
	a.password = co.Password
	return nil
}

// AddEntry appends e to the archive, rejecting a path that already
// exists. e.Data must already hold plaintext; AddEntry seals it through
// the pipeline immediately, under this call's own co, rather than
// deferring the expensive work to Save.
func (a *Archive) AddEntry(e *Entry, co CreateOptions) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if !a.paths.Add(e.Path) {
		return varcerr.Newf(varcerr.Duplicate, "duplicate path %(path)q", "path", e.Path)
	}

	if e.Data != nil {
		if co.Encrypt {
			if err := a.ensureCrypto(co); err != nil {
				a.paths.Del(e.Path)
				return err
			}
		}
		if co.CompressLevel != 0 {
			a.pipeline.CompressLevel = co.CompressLevel
		} else {
			a.pipeline.CompressLevel = a.compressLevel
		}
		if err := a.pipeline.Seal(e, co.Encrypt, co.Compress); err != nil {
			a.paths.Del(e.Path)
			return err
		}
	}

	a.entries = append(a.entries, e)
	a.header.FileCount = uint32(len(a.entries))
	a.markModified()
	return nil
}

// AddFile reads path from the archive's FileSystem and adds it under
// archivePath, sealed under co.
func (a *Archive) AddFile(archivePath, diskPath string, co CreateOptions) error {
	data, err := a.fs.ReadFile(diskPath)
	if err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "reading "+diskPath)
	}
	e, err := NewEntryFromBytes(archivePath, data, FileEntry)
	if err != nil {
		return err
	}
	return a.AddEntry(e, co)
}

// AddFiles adds multiple disk files under one shared co, reporting
// progress via the archive's ProgressFunc after each.
func (a *Archive) AddFiles(files map[string]string, co CreateOptions) error {
	paths := make([]string, 0, len(files))
	for archivePath := range files {
		paths = append(paths, archivePath)
	}
	for i, archivePath := range paths {
		if err := a.AddFile(archivePath, files[archivePath], co); err != nil {
			return err
		}
		a.report(StageAdd, archivePath, i+1, len(paths))
	}
	return nil
}

// AddVirtual adds data directly under archivePath without touching
// disk, e.g. for programmatically generated content, sealed under co.
func (a *Archive) AddVirtual(archivePath string, data []byte, co CreateOptions) error {
	e, err := NewEntryFromBytes(archivePath, data, FileEntry)
	if err != nil {
		return err
	}
	return a.AddEntry(e, co)
}

// AddDirectory recursively adds every regular file found under root,
// sealed under co. A file is skipped if its own name begins with a dot
// unless co.IncludeHidden is set; parent directories beginning with a
// dot are still descended into, only the file's own name is checked.
// Archive paths are root-relative, exactly as IterDirRecursive reports
// them.
func (a *Archive) AddDirectory(root string, co CreateOptions) error {
	found, err := a.fs.IterDirRecursive(root)
	if err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "walking "+root)
	}

	var files []DirEntry
	for _, de := range found {
		if !de.IsRegular {
			continue
		}
		if de.Hidden && !co.IncludeHidden {
			continue
		}
		files = append(files, de)
	}

	for i, de := range files {
		diskPath := filepath.Join(root, filepath.FromSlash(de.Path))
		if err := a.AddFile(de.Path, diskPath, co); err != nil {
			return err
		}
		a.report(StageAdd, de.Path, i+1, len(files))
	}
	return nil
}

// RemoveEntry removes the entry at archivePath. It reports NotFound if
// no such entry exists.
func (a *Archive) RemoveEntry(archivePath string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	for i, e := range a.entries {
		if e.Path == archivePath {
			e.ClearData()
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			a.paths.Del(archivePath)
			a.header.FileCount = uint32(len(a.entries))
			a.markModified()
			return nil
		}
	}
	return varcerr.Newf(varcerr.NotFound, "no entry %(path)q", "path", archivePath)
}

// RemoveEntries removes every entry whose path matches the glob
// pattern. It reports NotFound if nothing matches.
func (a *Archive) RemoveEntries(pattern string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	kept := a.entries[:0:0]
	matched := false
	for _, e := range a.entries {
		if matchesGlob(e.Path, pattern) {
			e.ClearData()
			a.paths.Del(e.Path)
			matched = true
			continue
		}
		kept = append(kept, e)
	}
	if !matched {
		return varcerr.Newf(varcerr.NotFound, "no entry matches %(pattern)q", "pattern", pattern)
	}
	a.entries = kept
	a.header.FileCount = uint32(len(a.entries))
	a.markModified()
	return nil
}

// ClearEntries removes every entry, leaving the archive empty but still
// open.
func (a *Archive) ClearEntries() {
	for _, e := range a.entries {
		e.ClearData()
	}
	a.entries = nil
	a.paths = stringset.New(0)
	a.header.FileCount = 0
	a.markModified()
}
