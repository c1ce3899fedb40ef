package varc

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirEntry describes one file found under a directory root by
// IterDirRecursive: Path is root-relative and slash-separated, Hidden
// reports whether the entry's own name (not any parent directory's)
// begins with a dot.
type DirEntry struct {
	Path      string
	IsRegular bool
	Size      int64
	Hidden    bool
}

// FileSystem abstracts the filesystem operations Archive needs for
// AddFile/AddDirectory/ExtractFile, so tests can swap in an in-memory
// implementation without touching disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (os.FileInfo, error)
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	IterDirRecursive(root string) ([]DirEntry, error)
}

// OSFileSystem is the default FileSystem, backed by the real disk.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

func (OSFileSystem) Symlink(oldname, newname string) error { return os.Symlink(oldname, newname) }

func (OSFileSystem) Readlink(name string) (string, error) { return os.Readlink(name) }

// IterDirRecursive walks root depth-first, reporting every entry
// beneath it (root itself excluded) with a path relative to root.
func (OSFileSystem) IterDirRecursive(root string) ([]DirEntry, error) {
	var out []DirEntry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, DirEntry{
			Path:      filepath.ToSlash(rel),
			IsRegular: d.Type().IsRegular(),
			Size:      info.Size(),
			Hidden:    strings.HasPrefix(d.Name(), "."),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
