// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package varc implements the VaultArchive (.varc) container format: an
// ordered collection of named byte streams with optional per-entry
// DEFLATE compression, optional whole-archive AES-256-CBC encryption
// derived from a passphrase, and mandatory per-entry SHA-256 integrity
// checksums.
//
// It has a fairly basic format:
//   - a fixed 68-byte global header (signature "VARC", version, flags,
//     file count, PBKDF2 salt, AES IV, reserved bytes)
//   - an optional metadata block, present iff the header's HAS_METADATA
//     flag is set
//   - one fixed entry header plus path, stored payload, and a trailing
//     32-byte SHA-256 checksum, per archived entry, in order
//
// Unlike a central-directory format (ZIP) or a table-of-contents format
// (XAR), VARC keeps no index beyond the linear entry list: archives are
// loaded whole and entries are always parsed strictly in sequence.
//
// See package codec for the on-disk layout, package crypto for the
// encrypt/derive/hash primitives, and package compress for the DEFLATE
// layer. This package owns the pipeline that stitches them together and
// the Archive controller that mediates between callers and that
// pipeline.
package varc
