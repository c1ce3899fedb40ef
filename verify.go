package varc

import "github.com/Lotus-OS-Core/VaultArchive/varcerr"

// VerifyEntry recomputes archivePath's plaintext checksum and reports
// whether it matches the stored checksum, without disturbing the
// entry's in-memory state. If the entry is still sealed (Data holds
// stored, possibly encrypted/compressed bytes), it is reversed through
// a clone of the pipeline's read path first; if it has already been
// opened (Data already holds plaintext, as every entry does right
// after Archive.Open), the checksum is compared directly rather than
// running the read path a second time on already-plaintext bytes.
func (a *Archive) VerifyEntry(archivePath string) error {
	e, err := a.FindEntry(archivePath)
	if err != nil {
		return err
	}
	if e.Data == nil {
		return nil
	}
	if !e.sealed {
		if !a.crypto.VerifyChecksum(e.Data, e.Checksum[:]) {
			return varcerr.New(varcerr.ChecksumMismatch, "checksum mismatch for entry "+e.Path)
		}
		return nil
	}
	clone := *e
	clone.Data = append([]byte(nil), e.Data...)
	return a.pipeline.Open(&clone)
}

// Verify checks every entry's checksum, reporting the first failure it
// finds. Verification is idempotent: it never leaves entries in a
// different sealed/unsealed state than it found them.
func (a *Archive) Verify() error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	total := len(a.entries)
	for i, e := range a.entries {
		if e.IsDirectory() || e.Data == nil {
			continue
		}
		if err := a.VerifyEntry(e.Path); err != nil {
			return err
		}
		a.report(StageVerify, e.Path, i+1, total)
	}
	return nil
}
