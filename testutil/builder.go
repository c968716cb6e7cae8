// Package testutil builds synthetic PeakSight byte buffers for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Builder assembles a little-endian byte buffer field by field. Methods
// return the builder so layouts can be written as chains that read like the
// format description.
type Builder struct {
	buf bytes.Buffer
}

// U8 appends one byte.
func (b *Builder) U8(v uint8) *Builder {
	b.buf.WriteByte(v)
	return b
}

// I32 appends a signed 32-bit little-endian integer.
func (b *Builder) I32(v int32) *Builder {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], uint32(v))
	b.buf.Write(p[:])
	return b
}

// U64 appends an unsigned 64-bit little-endian integer.
func (b *Builder) U64(v uint64) *Builder {
	var p [8]byte
	binary.LittleEndian.PutUint64(p[:], v)
	b.buf.Write(p[:])
	return b
}

// F32 appends a 32-bit little-endian float.
func (b *Builder) F32(v float32) *Builder {
	return b.I32(int32(math.Float32bits(v)))
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p []byte) *Builder {
	b.buf.Write(p)
	return b
}

// Zeros appends n zero bytes, the stand-in for reserved regions.
func (b *Builder) Zeros(n int) *Builder {
	b.buf.Write(make([]byte, n))
	return b
}

// Str appends a length-prefixed string: an i32 byte count followed by the
// raw bytes.
func (b *Builder) Str(s string) *Builder {
	return b.I32(int32(len(s))).Raw([]byte(s))
}

// Header appends a PeakSight file prologue up to but not including the
// change count, so tests control the change log explicitly.
func (b *Builder) Header(typeCode uint8, version int32, comment string) *Builder {
	return b.U8(typeCode).Raw([]byte("fxs")).I32(version).Str(comment).Zeros(28)
}

// Change appends one change-log entry.
func (b *Builder) Change(filetime uint64, comment string) *Builder {
	return b.U64(filetime).Str(comment)
}

// Len reports how many bytes have been written so far, which tests use to
// predict error offsets.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Bytes returns the assembled buffer.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// MinimalWDS returns a complete, valid WDS results file holding a single
// dataset with no measurement sub-records.
func MinimalWDS(datasetName, conditionFile string) []byte {
	b := &Builder{}
	b.Header(6, 1, "t").I32(0) // header, no changes
	b.I32(11).Zeros(20).I32(1) // WDS struct, reserved, one dataset
	b.I32(0x11).Zeros(4)
	b.I32(1).I32(2).I32(3).I32(4)     // x_axis, y_axis, beam_x, beam_y
	b.F32(1.5).F32(2.5)               // resolution_x, resolution_y
	b.I32(640).I32(480)               // width, height
	b.Zeros(12)
	b.I32(3).F32(0.25) // accumulation_times, dwell_time
	b.Zeros(4)
	for i := 0; i < 49; i++ {
		b.I32(int32(i))
	}
	b.Zeros(40)
	b.Str(conditionFile)
	b.I32(0) // no measurements
	b.Str(datasetName)
	b.Zeros(316)
	return b.Bytes()
}
