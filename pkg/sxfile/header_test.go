package sxfile

import (
	"bytes"
	"testing"
	"time"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epmakit/camsx/testutil"
)

func decodeTestHeader(t *testing.T, data []byte) (*FileHeader, error) {
	t.Helper()
	d := NewDecoder(nil, nil)
	return d.DecodeHeader(kaitai.NewStream(bytes.NewReader(data)))
}

func TestDecodeHeader(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(3, 4, "calibration of PET").I32(0)

	hdr, err := decodeTestHeader(t, b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(3), hdr.TypeCode)
	assert.Equal(t, "Calibration setup", hdr.TypeName)
	assert.Equal(t, int32(4), hdr.Version)
	assert.Equal(t, "calibration of PET", hdr.Comment)
	assert.Empty(t, hdr.Changes)
}

func TestDecodeHeader_ChangeLog(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(6, 1, "").I32(2)
	b.Change(116444736000000000, "first")
	b.Change(116444736000000000+10_000_000, "second")

	hdr, err := decodeTestHeader(t, b.Bytes())
	require.NoError(t, err)
	require.Len(t, hdr.Changes, 2)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), hdr.Changes[0].Time)
	assert.Equal(t, "first", hdr.Changes[0].Comment)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC), hdr.Changes[1].Time)
	assert.Equal(t, "second", hdr.Changes[1].Comment)
}

func TestDecodeHeader_BadMagic(t *testing.T) {
	b := &testutil.Builder{}
	b.U8(6).Raw([]byte("xyz")).I32(1).I32(0)

	_, err := decodeTestHeader(t, b.Bytes())
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeHeader_UnknownTypeCode(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(99, 1, "").I32(0)

	_, err := decodeTestHeader(t, b.Bytes())
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestDecodeHeader_TruncatedComment(t *testing.T) {
	b := &testutil.Builder{}
	b.U8(6).Raw([]byte("fxs")).I32(1).I32(50).Raw([]byte("short"))

	_, err := decodeTestHeader(t, b.Bytes())
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeHeader_TruncatedChangeLog(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(6, 1, "c").I32(3).Change(0, "only one")

	_, err := decodeTestHeader(t, b.Bytes())
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeHeader_LeavesCursorAtPayload(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(6, 1, "c").I32(0)
	payloadStart := b.Len()
	b.I32(11)

	d := NewDecoder(nil, nil)
	stream := kaitai.NewStream(bytes.NewReader(b.Bytes()))
	_, err := d.DecodeHeader(stream)
	require.NoError(t, err)

	pos, err := stream.Pos()
	require.NoError(t, err)
	assert.Equal(t, int64(payloadStart), pos)
}
