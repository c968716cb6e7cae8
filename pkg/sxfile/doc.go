// Package sxfile decodes the proprietary binary files written by Cameca's
// PeakSight electron-microprobe software. The layout is reverse engineered:
// field boundaries, endianness, and reserved-region lengths were discovered
// empirically, and the decoder reproduces them byte for byte.
//
// All PeakSight files share a common prologue (see DecodeHeader); of the ten
// file-type variants, only WDS results files (type code 6) are decoded in
// full (see DecodeWDS). Parsing consumes a complete in-memory buffer through
// a kaitai.Stream and returns either a fully populated value tree or a
// single typed error; partial results are never returned.
package sxfile
