package camsx

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
	"golang.org/x/text/encoding"

	"github.com/epmakit/camsx/pkg/sxfile"
)

// Parser wraps the sxfile decoder with configuration.
type Parser struct {
	decoder *sxfile.Decoder
	options options
}

// options holds configuration for the parser.
type options struct {
	logger    *slog.Logger
	encoding  encoding.Encoding
	debugMode bool
}

// Option is a function that configures parser options.
type Option func(*options)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEncoding sets the text encoding used to decode the file's
// length-prefixed strings (defaults to Windows-1252).
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithDebugMode enables debug logging to stderr.
func WithDebugMode(enabled bool) Option {
	return func(o *options) {
		o.debugMode = enabled
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: slog.Default(),
	}
}

// NewParser creates a new parser with the given options.
func NewParser(opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if o.debugMode {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return &Parser{
		decoder: sxfile.NewDecoder(logger, o.encoding),
		options: o,
	}
}

// Global parser instance for convenience functions.
var globalParser *Parser
var globalParserOnce sync.Once

// getGlobalParser returns a singleton parser instance.
func getGlobalParser() *Parser {
	globalParserOnce.Do(func() {
		globalParser = NewParser()
	})
	return globalParser
}

// parserFor returns the global parser for plain calls, or a dedicated one
// when per-call options are given.
func parserFor(opts []Option) *Parser {
	if len(opts) == 0 {
		return getGlobalParser()
	}
	return NewParser(opts...)
}

// ParseWDS parses a complete in-memory WDS results file.
func ParseWDS(data []byte, opts ...Option) (*sxfile.WDSFile, error) {
	return parserFor(opts).ParseWDS(context.Background(), data)
}

// ParseWDSWithContext parses a WDS results file with context support.
// Cancellation is honored between dataset items.
func ParseWDSWithContext(ctx context.Context, data []byte, opts ...Option) (*sxfile.WDSFile, error) {
	return parserFor(opts).ParseWDS(ctx, data)
}

// ParseWDSFile loads a WDS results file from disk and parses it. The
// returned tree carries the file's basename (without extension), matching
// how PeakSight refers to its data files.
func ParseWDSFile(path string, opts ...Option) (*sxfile.WDSFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	file, err := parserFor(opts).ParseWDS(context.Background(), data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	file.Basename = basename(path)
	return file, nil
}

// ParseHeader reads only the common file prologue, so a caller can identify
// any of the ten PeakSight file variants without decoding the payload.
func ParseHeader(data []byte, opts ...Option) (*sxfile.FileHeader, error) {
	return parserFor(opts).ParseHeader(data)
}

// WDSToJSON parses a WDS results file and renders the value tree as
// indented JSON for inspection.
func WDSToJSON(data []byte, opts ...Option) ([]byte, error) {
	file, err := parserFor(opts).ParseWDS(context.Background(), data)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return out, nil
}

// ParseWDS parses a complete in-memory WDS results file.
func (p *Parser) ParseWDS(ctx context.Context, data []byte) (*sxfile.WDSFile, error) {
	stream := kaitai.NewStream(bytes.NewReader(data))
	return p.decoder.DecodeWDS(ctx, stream)
}

// ParseHeader reads only the common file prologue.
func (p *Parser) ParseHeader(data []byte) (*sxfile.FileHeader, error) {
	stream := kaitai.NewStream(bytes.NewReader(data))
	return p.decoder.DecodeHeader(stream)
}

func basename(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
