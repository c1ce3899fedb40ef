package varc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// matchesGlob reports whether s matches pattern, where '*' matches any
// run of characters, including '/', and '?' matches exactly one
// character. Entry paths are not filesystem paths to a shell, so the
// match runs over the whole string rather than stopping at path
// separators the way path.Match does.
func matchesGlob(s, pattern string) bool {
	var si, pi, star, match int
	star = -1
	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			si++
			pi++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			match = si
			pi++
		case star != -1:
			pi = star + 1
			match++
			si = match
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

// ListOptions toggles extra columns on List's output.
type ListOptions struct {
	ShowChecksums  bool
	ShowTimestamps bool
}

// FindEntry returns the entry at archivePath, or a NotFound error.
func (a *Archive) FindEntry(archivePath string) (*Entry, error) {
	for _, e := range a.entries {
		if e.Path == archivePath {
			return e, nil
		}
	}
	return nil, varcerr.Newf(varcerr.NotFound, "no entry %(path)q", "path", archivePath)
}

// FindEntries returns every entry whose path matches the glob pattern,
// in on-disk order.
func (a *Archive) FindEntries(pattern string) ([]*Entry, error) {
	var out []*Entry
	for _, e := range a.entries {
		if matchesGlob(e.Path, pattern) {
			out = append(out, e)
		}
	}
	return out, nil
}

// List renders a human-readable one-line-per-entry table, in the style
// of `tar -tv`: flags, original size, stored size, file type, path, and,
// per opts, a checksum and/or modification time column. A trailing
// summary line gives the total entry count, total original size, and,
// if any entry is compressed, the total stored size and the resulting
// ratio.
func (a *Archive) List(opts ListOptions) string {
	var b strings.Builder
	var totalOriginal, totalStored uint64
	anyCompressed := false

	for _, e := range a.entries {
		flags := "-"
		switch {
		case e.IsDirectory():
			flags = "d"
		case e.IsSymlink():
			flags = "l"
		}
		flags += flagChar(e.IsEncrypted(), "e")
		flags += flagChar(e.IsCompressed(), "c")

		fmt.Fprintf(&b, "%-4s %10d %10d %-8s", flags, e.OriginalSize, e.StoredSize, e.FileType)
		if opts.ShowChecksums {
			fmt.Fprintf(&b, " %s", hex.EncodeToString(e.Checksum[:]))
		}
		if opts.ShowTimestamps {
			fmt.Fprintf(&b, " %s", e.ModificationTime.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(&b, " %s\n", e.Path)

		totalOriginal += e.OriginalSize
		totalStored += e.StoredSize
		if e.IsCompressed() {
			anyCompressed = true
		}
	}

	if anyCompressed && totalOriginal > 0 {
		ratio := float64(totalStored) / float64(totalOriginal) * 100
		fmt.Fprintf(&b, "total: %d entries, %d bytes original, %d bytes stored (%.1f%%)\n",
			len(a.entries), totalOriginal, totalStored, ratio)
	} else {
		fmt.Fprintf(&b, "total: %d entries, %d bytes original\n", len(a.entries), totalOriginal)
	}
	return b.String()
}

func flagChar(set bool, ch string) string {
	if set {
		return ch
	}
	return "-"
}
