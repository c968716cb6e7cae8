package sxfile

import (
	"errors"
	"fmt"
)

// Error kinds reported by the decoder. All of them abort parsing of the
// current file; none are retryable. Match with errors.Is.
var (
	// ErrBadMagic means the file does not start with the "fxs" tag and is
	// not a PeakSight data file at all.
	ErrBadMagic = errors.New("not a PeakSight file")

	// ErrWrongFileType means the header identifies a file variant this
	// decoder does not handle.
	ErrWrongFileType = errors.New("wrong file type")

	// ErrUnexpectedStructType means a discriminator at a structural
	// boundary did not carry its expected sentinel value, which indicates
	// either format drift or a desynchronized cursor.
	ErrUnexpectedStructType = errors.New("unexpected struct type")

	// ErrUnexpectedEOF means the buffer ran out mid-read.
	ErrUnexpectedEOF = errors.New("unexpected end of data")

	// ErrInvalidLength means a length field was negative.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidArrayLength means a sample-data length field was negative
	// or larger than the remaining buffer.
	ErrInvalidArrayLength = errors.New("invalid array length")

	// ErrUnknownCode means a lookup-table miss. Unlike the other kinds it
	// is recoverable: measurement records keep their raw codes, and only
	// presentation-time lookups report it.
	ErrUnknownCode = errors.New("unknown code")
)

// StructTypeError reports a discriminator mismatch at a structural boundary.
// Offset is the position of the discriminator field itself.
type StructTypeError struct {
	Offset int64
	Want   int32
	Got    int32
}

func (e *StructTypeError) Error() string {
	return fmt.Sprintf("unexpected struct type at offset %d: want %#x, got %#x", e.Offset, e.Want, e.Got)
}

func (e *StructTypeError) Unwrap() error { return ErrUnexpectedStructType }

// LengthError reports a length field that cannot be satisfied. Offset is the
// position immediately after the length field was read.
type LengthError struct {
	Offset int64
	Length int32
	Kind   error // ErrInvalidLength or ErrInvalidArrayLength
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v %d at offset %d", e.Kind, e.Length, e.Offset)
}

func (e *LengthError) Unwrap() error { return e.Kind }

// UnknownCodeError reports a code with no entry in one of the lookup tables.
type UnknownCodeError struct {
	Table string
	Code  int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Table, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }
