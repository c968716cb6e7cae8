// Package camsx provides a high-level API for reading Cameca PeakSight
// binary data files.
//
// # Overview
//
// This package wraps the sxfile decoder with convenience functions that
// handle file loading, configuration, and JSON export. It supports:
//
//   - Parsing WDS results files from byte buffers or from disk
//   - Header-only probing to identify any PeakSight file variant
//   - JSON serialization of the parsed value tree
//   - Context support for cancellation
//   - Flexible configuration options
//
// # Quick Start
//
// The simplest way to parse a file is using the global functions:
//
//	wds, err := camsx.ParseWDSFile("sample.wdsDat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ds := range wds.Datasets {
//	    fmt.Println(ds.Name, len(ds.Measurements))
//	}
//
// # JSON Support
//
// Convert a file to JSON for inspection:
//
//	jsonData, err := camsx.WDSToJSON(binaryData)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Per-call options override the defaults:
//
//	wds, err := camsx.ParseWDS(binaryData,
//	    camsx.WithEncoding(charmap.Windows1250),
//	    camsx.WithDebugMode(true),
//	)
package camsx
