// Package compress implements VARC's compression provider: gzip-framed
// DEFLATE (window bits 31) at a selectable level, a bounded-memory
// chunked streaming variant, and a diagnostics-only magic-byte sniffer.
// It is built on github.com/klauspost/compress/gzip, the same module
// the rest of this corpus already depends on for its faster drop-in
// replacements of the standard library's compress/* packages.
package compress
