// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package codec implements the fixed-layout big-endian binary encoding
// for a VARC archive's global header, per-entry header, and optional
// metadata block, plus the magic-byte file-type classifier used to tag
// newly-added entries.
package codec
