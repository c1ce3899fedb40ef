package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/Lotus-OS-Core/VaultArchive/codec"
	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// ChunkSize bounds the memory used by the streaming compress/decompress
// variants.
const ChunkSize = 64 * 1024

// Provider is an explicit value (never package state) bundling the
// compression operations the archive controller needs, mirroring
// crypto.Provider.
type Provider struct{}

// New returns a ready-to-use compression Provider.
func New() *Provider { return &Provider{} }

// Result is returned by Compress.
type Result struct {
	Data           []byte
	OriginalSize   int64
	CompressedSize int64
	Ratio          float64 // CompressedSize / OriginalSize
	OK             bool
	Error          error
}

// DecompressResult is returned by Decompress.
type DecompressResult struct {
	Data             []byte
	OriginalSize     int64
	DecompressedSize int64
	OK               bool
	Error            error
}

// Compress deflates data at level (0-9, gzip.NoCompression ..
// gzip.BestCompression), wrapped in a gzip container (window bits 31).
func (p *Provider) Compress(data []byte, level int) Result {
	if level < 0 || level > 9 {
		err := varcerr.Newf(varcerr.InvalidArgument, "compression level %(level)d out of range 0-9", "level", level)
		return Result{Error: err}
	}

	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return Result{Error: varcerr.Annotate(err, varcerr.CompressionFailure, "creating gzip writer")}
	}
	if _, err := w.Write(data); err != nil {
		return Result{Error: varcerr.Annotate(err, varcerr.CompressionFailure, "writing compressed data")}
	}
	if err := w.Close(); err != nil {
		return Result{Error: varcerr.Annotate(err, varcerr.CompressionFailure, "closing gzip writer")}
	}

	out := buf.Bytes()
	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(len(out)) / float64(len(data))
	}
	return Result{
		Data:           out,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
		Ratio:          ratio,
		OK:             true,
	}
}

// Decompress inflates data. If expectedSize > 0 and the decompressed
// length differs, it fails with a DecompressionFailure tagged as a size
// mismatch.
func (p *Provider) Decompress(data []byte, expectedSize int64) DecompressResult {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return DecompressResult{Error: varcerr.Annotate(err, varcerr.DecompressionFailure, "opening gzip stream")}
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return DecompressResult{Error: varcerr.Annotate(err, varcerr.DecompressionFailure, "reading gzip stream")}
	}
	if err := r.Close(); err != nil {
		return DecompressResult{Error: varcerr.Annotate(err, varcerr.DecompressionFailure, "closing gzip stream")}
	}

	if expectedSize > 0 && int64(len(out)) != expectedSize {
		return DecompressResult{
			Data:             out,
			DecompressedSize: int64(len(out)),
			Error: varcerr.Newf(varcerr.DecompressionFailure,
				"decompressed size mismatch: got %(got)d, want %(want)d",
				"got", len(out), "want", expectedSize),
		}
	}

	return DecompressResult{
		Data:             out,
		OriginalSize:     expectedSize,
		DecompressedSize: int64(len(out)),
		OK:               true,
	}
}

// magic bytes recognized by IsCompressed.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zlibMagic = []byte{0x78}
)

// IsCompressed is a diagnostics-only heuristic; the pipeline relies on
// entry flags, never on sniffing, to decide whether to inflate.
func IsCompressed(data []byte) bool {
	if len(data) >= 2 && bytes.Equal(data[:2], gzipMagic) {
		return true
	}
	if len(data) >= 1 && bytes.HasPrefix(data, zlibMagic) {
		return true
	}
	return false
}

// OptimalLevel returns a suggested compression level for a given
// detected file type: already-compressed or noisy formats gain little
// from higher levels, so spend the CPU where it pays off. Neither the
// archive controller nor the CLI calls it; their default level is 6.
func OptimalLevel(ft codec.FileType) int {
	switch ft {
	case codec.Text, codec.Document:
		return 9
	case codec.Audio, codec.Video:
		return 1
	default:
		return 6
	}
}
