package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/luci/luci-go/common/iotools"

	"github.com/Lotus-OS-Core/VaultArchive/varcerr"
)

// PullFunc supplies the next chunk of input to a chunked compress/
// decompress operation. It returns io.EOF (possibly with a final,
// non-empty chunk) when input is exhausted, matching io.Reader's
// contract.
type PullFunc func(chunk []byte) (n int, err error)

// PushFunc consumes one output chunk of a chunked compress/decompress
// operation.
type PushFunc func(chunk []byte) error

// CompressStream pulls plaintext via pull in ChunkSize pieces, deflates
// it at level, and pushes compressed output via push in whatever pieces
// the gzip writer emits. Memory use is bounded to a small constant multiple of
// ChunkSize regardless of input size: CompressStream never needs to
// know the compressed length up front, so it never buffers the whole
// output.
func CompressStream(pull PullFunc, push PushFunc, level int) (int64, int64, error) {
	pw := &pushWriter{push: push}
	cw := &iotools.CountingWriter{Writer: pw}

	w, err := gzip.NewWriterLevel(cw, level)
	if err != nil {
		return 0, 0, varcerr.Annotate(err, varcerr.CompressionFailure, "creating gzip writer")
	}

	var read int64
	chunk := make([]byte, ChunkSize)
	for {
		n, err := pull(chunk)
		if n > 0 {
			read += int64(n)
			if _, werr := w.Write(chunk[:n]); werr != nil {
				return read, cw.Count, varcerr.Annotate(werr, varcerr.CompressionFailure, "writing compressed chunk")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return read, cw.Count, varcerr.Annotate(err, varcerr.CompressionFailure, "pulling input chunk")
		}
	}
	if err := w.Close(); err != nil {
		return read, cw.Count, varcerr.Annotate(err, varcerr.CompressionFailure, "closing gzip writer")
	}
	return read, cw.Count, nil
}

// DecompressStream is the inverse of CompressStream: it pulls gzip-
// framed input via pull and pushes inflated output via push in
// ChunkSize pieces.
func DecompressStream(pull PullFunc, push PushFunc) (int64, int64, error) {
	pr := &pullReader{pull: pull}
	cr := &iotools.CountingReader{Reader: pr}

	r, err := gzip.NewReader(cr)
	if err != nil {
		return 0, 0, varcerr.Annotate(err, varcerr.DecompressionFailure, "opening gzip stream")
	}

	var written int64
	chunk := make([]byte, ChunkSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			written += int64(n)
			if perr := push(chunk[:n]); perr != nil {
				return cr.Count, written, varcerr.Annotate(perr, varcerr.DecompressionFailure, "pushing output chunk")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return cr.Count, written, varcerr.Annotate(err, varcerr.DecompressionFailure, "reading gzip stream")
		}
	}
	if err := r.Close(); err != nil {
		return cr.Count, written, varcerr.Annotate(err, varcerr.DecompressionFailure, "closing gzip stream")
	}
	return cr.Count, written, nil
}

// pushWriter adapts a PushFunc to io.Writer.
type pushWriter struct{ push PushFunc }

func (w *pushWriter) Write(p []byte) (int, error) {
	if err := w.push(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// pullReader adapts a PullFunc to io.Reader.
type pullReader struct{ pull PullFunc }

func (r *pullReader) Read(p []byte) (int, error) {
	return r.pull(p)
}
