package sxfile

import (
	"log/slog"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Decoder decodes PeakSight binary files from a kaitai stream. A Decoder
// holds no per-parse state, so one instance may serve many files, including
// concurrently, as long as each parse gets its own stream.
type Decoder struct {
	logger *slog.Logger
	enc    encoding.Encoding
}

// NewDecoder creates a decoder. A nil logger falls back to slog.Default().
// A nil encoding falls back to Windows-1252, the code page PeakSight writes
// its strings in.
func NewDecoder(logger *slog.Logger, enc encoding.Encoding) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	if enc == nil {
		enc = charmap.Windows1252
	}
	return &Decoder{logger: logger, enc: enc}
}

func (d *Decoder) newReader(s *kaitai.Stream) *reader {
	return newReader(s, d.enc)
}
