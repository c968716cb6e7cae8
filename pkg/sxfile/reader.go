package sxfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"golang.org/x/text/encoding"
)

// reader is the decode cursor: a kaitai stream plus the text decoder used
// for length-prefixed strings. All reads are little-endian and report the
// byte offset of any failure.
type reader struct {
	s    *kaitai.Stream
	text *encoding.Decoder
}

func newReader(s *kaitai.Stream, enc encoding.Encoding) *reader {
	return &reader{s: s, text: enc.NewDecoder()}
}

// pos returns the current cursor offset, or -1 if the underlying stream
// cannot report it.
func (r *reader) pos() int64 {
	p, err := r.s.Pos()
	if err != nil {
		return -1
	}
	return p
}

// remaining reports how many bytes are left between the cursor and the end
// of the buffer.
func (r *reader) remaining() (int64, error) {
	size, err := r.s.Size()
	if err != nil {
		return 0, err
	}
	pos, err := r.s.Pos()
	if err != nil {
		return 0, err
	}
	return size - pos, nil
}

// wrapEOF converts the stream's io errors into ErrUnexpectedEOF with the
// offset at which the buffer ran out.
func (r *reader) wrapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w at offset %d", ErrUnexpectedEOF, r.pos())
	}
	return err
}

func (r *reader) u8() (uint8, error) {
	v, err := r.s.ReadU1()
	if err != nil {
		return 0, r.wrapEOF(err)
	}
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.s.ReadS4le()
	if err != nil {
		return 0, r.wrapEOF(err)
	}
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	v, err := r.s.ReadU8le()
	if err != nil {
		return 0, r.wrapEOF(err)
	}
	return v, nil
}

func (r *reader) f32() (float32, error) {
	v, err := r.s.ReadF4le()
	if err != nil {
		return 0, r.wrapEOF(err)
	}
	return v, nil
}

// i32s fills each destination with the next signed 32-bit value.
func (r *reader) i32s(dst ...*int32) error {
	for _, d := range dst {
		v, err := r.i32()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

// f32s fills each destination with the next 32-bit float.
func (r *reader) f32s(dst ...*float32) error {
	for _, d := range dst {
		v, err := r.f32()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	b, err := r.s.ReadBytes(n)
	if err != nil {
		return nil, r.wrapEOF(err)
	}
	return b, nil
}

// skip advances the cursor over a reserved region without reading it. The
// byte count is a format contract: a buffer too short to hold the full
// region is truncated, even though the content is undecoded.
func (r *reader) skip(n int64) error {
	left, err := r.remaining()
	if err != nil {
		return err
	}
	if n > left {
		return fmt.Errorf("%w: %d reserved bytes at offset %d, %d left", ErrUnexpectedEOF, n, r.pos(), left)
	}
	if _, err := r.s.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("skipping %d reserved bytes at offset %d: %w", n, r.pos(), err)
	}
	return nil
}

// str reads one little-endian signed 32-bit length followed by that many
// bytes decoded with the configured text encoding.
func (r *reader) str() (string, error) {
	n, err := r.i32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", &LengthError{Offset: r.pos(), Length: n, Kind: ErrInvalidLength}
	}
	raw, err := r.bytes(int(n))
	if err != nil {
		return "", err
	}
	out, err := r.text.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding text ending at offset %d: %w", r.pos(), err)
	}
	return string(out), nil
}
