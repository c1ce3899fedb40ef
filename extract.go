package varc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// ExtractOptions configures ExtractAll's entry selection and
// overwrite behavior.
type ExtractOptions struct {
	// Filter is a substring whitelist: an entry is extracted iff its
	// path contains at least one of these substrings. An empty Filter
	// extracts everything.
	Filter []string
	// Overwrite governs whether an existing file at the target path is
	// replaced. Default false: existing files are left untouched.
	Overwrite bool
}

func (eo ExtractOptions) matches(path string) bool {
	if len(eo.Filter) == 0 {
		return true
	}
	for _, f := range eo.Filter {
		if strings.Contains(path, f) {
			return true
		}
	}
	return false
}

// safeJoin resolves archivePath against outDir, rejecting any path that
// would escape outDir: an absolute path or a ".." component.
func safeJoin(outDir, archivePath string) (string, error) {
	if archivePath == "" {
		return "", varcerr.New(varcerr.InvalidArgument, "empty entry path")
	}
	cleanRel := filepath.FromSlash(archivePath)
	if filepath.IsAbs(cleanRel) {
		return "", varcerr.Newf(varcerr.InvalidArgument, "entry path %(path)q is absolute", "path", archivePath)
	}
	for _, part := range strings.Split(filepath.ToSlash(cleanRel), "/") {
		if part == ".." {
			return "", varcerr.Newf(varcerr.InvalidArgument, "entry path %(path)q escapes output directory", "path", archivePath)
		}
	}

	outAbs, err := filepath.Abs(outDir)
	if err != nil {
		return "", varcerr.Annotate(err, varcerr.IoFailure, "resolving output directory")
	}
	target := filepath.Join(outAbs, cleanRel)
	if target != outAbs && !strings.HasPrefix(target, outAbs+string(filepath.Separator)) {
		return "", varcerr.Newf(varcerr.InvalidArgument, "entry path %(path)q escapes output directory", "path", archivePath)
	}
	return target, nil
}

// ExtractFile writes the plaintext contents of archivePath to disk
// under outDir, creating parent directories as needed. An existing
// file at the target path is replaced.
func (a *Archive) ExtractFile(archivePath, outDir string) error {
	e, err := a.FindEntry(archivePath)
	if err != nil {
		return err
	}
	return a.extractEntry(e, outDir, ExtractOptions{Overwrite: true})
}

func (a *Archive) extractEntry(e *Entry, outDir string, eo ExtractOptions) error {
	target, err := safeJoin(outDir, e.Path)
	if err != nil {
		return err
	}

	if e.IsDirectory() {
		return a.fs.MkdirAll(target, 0o777)
	}
	if err := a.fs.MkdirAll(filepath.Dir(target), 0o777); err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "creating parent dir for "+e.Path)
	}
	if !eo.Overwrite {
		if _, err := a.fs.Stat(target); err == nil {
			return nil
		} else if !os.IsNotExist(err) {
			return varcerr.Annotate(err, varcerr.IoFailure, "checking existing file for "+e.Path)
		}
	}
	data := e.Data
	if e.sealed {
		clone := *e
		if err := a.pipeline.Open(&clone); err != nil {
			return err
		}
		data = clone.Data
	}
	if e.IsSymlink() {
		return a.fs.Symlink(string(data), target)
	}
	if err := a.fs.WriteFile(target, data, 0o644); err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "writing "+e.Path)
	}
	return nil
}

// ExtractAll writes every entry matching eo.Filter to outDir, directories
// first so files and symlinks underneath them have somewhere to land.
// Existing files are left untouched unless eo.Overwrite is set. A failing
// entry does not stop the others; once every selected entry has been
// tried, the first failure is returned.
func (a *Archive) ExtractAll(outDir string, eo ExtractOptions) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if err := a.fs.MkdirAll(outDir, 0o777); err != nil {
		return varcerr.Annotate(err, varcerr.IoFailure, "creating output directory")
	}

	var selected []*Entry
	for _, e := range a.entries {
		if eo.matches(e.Path) {
			selected = append(selected, e)
		}
	}

	var firstErr error
	for _, e := range selected {
		if e.IsDirectory() {
			if err := a.extractEntry(e, outDir, eo); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	total := len(selected)
	done := 0
	for _, e := range selected {
		if e.IsDirectory() {
			continue
		}
		if err := a.extractEntry(e, outDir, eo); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		done++
		a.report(StageExtract, e.Path, done, total)
	}
	return firstErr
}
