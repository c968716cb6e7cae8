package sxfile

import (
	"bytes"
	"fmt"
	"time"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// magicTag opens every PeakSight data file, right after the type code byte.
var magicTag = []byte("fxs")

// reservedAfterComment is the undecoded region between the file comment and
// the change log.
const reservedAfterComment = 28

// ChangeEntry is one entry of the file's change log: when the file was
// modified and the comment recorded for the modification.
type ChangeEntry struct {
	Time    time.Time `json:"time"`
	Comment string    `json:"comment"`
}

// FileHeader is the prologue shared by all PeakSight file variants.
type FileHeader struct {
	TypeCode uint8         `json:"type_code"`
	TypeName string        `json:"type_name"`
	Version  int32         `json:"version"`
	Comment  string        `json:"comment"`
	Changes  []ChangeEntry `json:"changes"`
}

// DecodeHeader reads the common file prologue from the start of the stream,
// leaving the cursor positioned at the first byte of the type-specific
// payload that follows.
func (d *Decoder) DecodeHeader(stream *kaitai.Stream) (*FileHeader, error) {
	return d.decodeHeader(d.newReader(stream))
}

func (d *Decoder) decodeHeader(r *reader) (*FileHeader, error) {
	code, err := r.u8()
	if err != nil {
		return nil, err
	}
	tag, err := r.bytes(len(magicTag))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(tag, magicTag) {
		return nil, fmt.Errorf("%w: tag %q at start of file", ErrBadMagic, tag)
	}
	typeName, err := FileTypeName(code)
	if err != nil {
		return nil, err
	}
	hdr := &FileHeader{TypeCode: code, TypeName: typeName}
	if err := r.i32s(&hdr.Version); err != nil {
		return nil, err
	}
	if hdr.Comment, err = r.str(); err != nil {
		return nil, fmt.Errorf("file comment: %w", err)
	}
	if err := r.skip(reservedAfterComment); err != nil {
		return nil, err
	}
	changeCount, err := r.i32()
	if err != nil {
		return nil, err
	}
	if changeCount < 0 {
		return nil, &LengthError{Offset: r.pos(), Length: changeCount, Kind: ErrInvalidLength}
	}
	for i := int32(0); i < changeCount; i++ {
		ft, err := r.u64()
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
		comment, err := r.str()
		if err != nil {
			return nil, fmt.Errorf("change %d: %w", i, err)
		}
		hdr.Changes = append(hdr.Changes, ChangeEntry{Time: FiletimeToTime(ft), Comment: comment})
	}
	d.logger.Debug("decoded file header",
		"type", hdr.TypeName, "version", hdr.Version, "changes", len(hdr.Changes))
	return hdr, nil
}
