package varc

// CreateOptions configures a single Add* call's crypto/compression
// policy. Each add_file/add_files/add_virtual/add_entry/add_directory
// call takes its own CreateOptions, so one archive can mix compressed
// and uncompressed, encrypted and plaintext entries.
type CreateOptions struct {
	// Compress turns on gzip framing for the entry(ies) this call adds.
	Compress bool
	// CompressLevel is the gzip level used when Compress is true.
	// Zero means the archive's configured default (6 unless overridden).
	CompressLevel int
	// Encrypt turns on AES-256-CBC for the entry(ies) this call adds. If
	// the archive has no crypto state yet, Password must be set; the
	// resulting salt/IV/key become authoritative for the whole archive.
	Encrypt bool
	// Password derives the archive's key the first time any call sets
	// Encrypt with no existing crypto state. Ignored once a key exists.
	Password string
	// IncludeHidden controls whether AddDirectory's walk includes
	// dotfiles; unused by any other Add* call.
	IncludeHidden bool
}

// Create builds a brand-new, empty archive at path. Nothing is written
// to disk until Save is called. Crypto/compression policy is not
// chosen here; each Add* call supplies its own CreateOptions.
func Create(path string, opts ...Option) (*Archive, error) {
	a := newArchive(opts...)
	a.Path = path
	a.state = StateModified
	return a, nil
}
