package sxfile

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Struct-type sentinels validating cursor alignment at structural
// boundaries.
const (
	wdsResultsStructType  = 11
	datasetItemStructType = 0x11
)

// Reserved-region widths discovered empirically. Each is a byte-count
// contract: the content is undecoded but the length must be consumed
// exactly or every following read desynchronizes.
const (
	reservedAfterWDSStruct     = 20
	reservedAfterItemStruct    = 4
	reservedAfterGeometry      = 12
	reservedAfterDwell         = 4
	reservedAfterZAxis         = 40
	reservedDatasetTrailer     = 316
	reservedAfterAcquisition   = 24
	reservedMeasurementTrailer = 124
)

// zAxisLen is the fixed element count of a dataset's z-axis array.
const zAxisLen = 49

// WDSFile is a fully decoded WDS results file (type code 6).
type WDSFile struct {
	Header   *FileHeader    `json:"header"`
	Basename string         `json:"basename,omitempty"`
	Datasets []*DatasetItem `json:"datasets"`
}

// DatasetItem is one acquisition dataset of a WDS results file: stage and
// beam geometry, dwell settings, and the per-spectrometer measurements.
type DatasetItem struct {
	XAxis             int32           `json:"x_axis"`
	YAxis             int32           `json:"y_axis"`
	BeamX             int32           `json:"beam_x"`
	BeamY             int32           `json:"beam_y"`
	ResolutionX       float32         `json:"resolution_x"`
	ResolutionY       float32         `json:"resolution_y"`
	Width             int32           `json:"width"`
	Height            int32           `json:"height"`
	AccumulationTimes int32           `json:"accumulation_times"`
	DwellTime         float32         `json:"dwell_time"`
	ZAxis             [zAxisLen]int32 `json:"z_axis"`
	ConditionFile     string          `json:"condition_file"`
	Name              string          `json:"name"`
	Measurements      []*Measurement  `json:"measurements"`}

// Measurement is one per-spectrometer measurement sub-record. Fields whose
// meaning is not established in the format (UnkType, Unknown3, Unknown4)
// keep their raw values; BeamSize is named after its suspected meaning but
// is unconfirmed. AtomNumber and Line stay raw codes so that files carrying
// codes outside the lookup tables still decode; resolve them with Element
// and XRayLine.
type Measurement struct {
	StructType  int32     `json:"struct_type"`
	UnkType     int32     `json:"unk_type"`
	AtomNumber  int32     `json:"atom_number"`
	Line        int32     `json:"line"`
	Unknown3    int32     `json:"unknown3"`
	SpectNo     int32     `json:"spect_no"`
	SpectName   int32     `json:"spect_name"`
	TwoD        float32   `json:"two_d"`
	K           float32   `json:"k"`
	Unknown4    int32     `json:"unknown4"`
	KV          float32   `json:"kv"`
	Current     float32   `json:"current"`
	PeakPos     int32     `json:"peak_pos"`
	Bias        int32     `json:"bias"`
	Gain        int32     `json:"gain"`
	DTime       int32     `json:"dtime"`
	BLin        int32     `json:"blin"`
	Window      int32     `json:"window"`
	Mode        int32     `json:"mode"`
	WDSStartPos int32     `json:"wds_start_pos"`
	Steps       int32     `json:"steps"`
	StepSize    float32   `json:"step_size"`
	DwellTime   float32   `json:"dwell_time"`
	BeamSize    int32     `json:"beam_size"`
	Data        []float32 `json:"data"`
}

// Element resolves the record's atom number to an element symbol.
func (m *Measurement) Element() (string, error) {
	return ElementSymbol(int(m.AtomNumber))
}

// XRayLine resolves the record's line code to an X-ray line name.
func (m *Measurement) XRayLine() (string, error) {
	return LineName(int(m.Line))
}

// DecodeWDS decodes a complete WDS results file from the start of the
// stream. The context is checked between dataset items only, never
// mid-record, so cancellation cannot leave a torn cursor.
func (d *Decoder) DecodeWDS(ctx context.Context, stream *kaitai.Stream) (*WDSFile, error) {
	r := d.newReader(stream)
	header, err := d.decodeHeader(r)
	if err != nil {
		return nil, err
	}
	if header.TypeCode != FileTypeWDSResults {
		return nil, fmt.Errorf("%w: %s (code %d), want WDS results (code %d)",
			ErrWrongFileType, header.TypeName, header.TypeCode, FileTypeWDSResults)
	}
	if err := expectStructType(r, wdsResultsStructType); err != nil {
		return nil, err
	}
	if err := r.skip(reservedAfterWDSStruct); err != nil {
		return nil, err
	}
	count, err := r.i32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &LengthError{Offset: r.pos(), Length: count, Kind: ErrInvalidLength}
	}
	d.logger.DebugContext(ctx, "decoding WDS datasets", "count", count)
	file := &WDSFile{Header: header}
	for i := int32(0); i < count; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		item, err := d.decodeDatasetItem(r)
		if err != nil {
			return nil, fmt.Errorf("dataset %d: %w", i, err)
		}
		file.Datasets = append(file.Datasets, item)
	}
	return file, nil
}

// expectStructType reads a 4-byte discriminator and checks it against the
// sentinel expected at this boundary.
func expectStructType(r *reader, want int32) error {
	pos := r.pos()
	got, err := r.i32()
	if err != nil {
		return err
	}
	if got != want {
		return &StructTypeError{Offset: pos, Want: want, Got: got}
	}
	return nil
}

func (d *Decoder) decodeDatasetItem(r *reader) (*DatasetItem, error) {
	if err := expectStructType(r, datasetItemStructType); err != nil {
		return nil, err
	}
	if err := r.skip(reservedAfterItemStruct); err != nil {
		return nil, err
	}
	item := &DatasetItem{}
	if err := r.i32s(&item.XAxis, &item.YAxis, &item.BeamX, &item.BeamY); err != nil {
		return nil, err
	}
	if err := r.f32s(&item.ResolutionX, &item.ResolutionY); err != nil {
		return nil, err
	}
	if err := r.i32s(&item.Width, &item.Height); err != nil {
		return nil, err
	}
	if err := r.skip(reservedAfterGeometry); err != nil {
		return nil, err
	}
	if err := r.i32s(&item.AccumulationTimes); err != nil {
		return nil, err
	}
	if err := r.f32s(&item.DwellTime); err != nil {
		return nil, err
	}
	if err := r.skip(reservedAfterDwell); err != nil {
		return nil, err
	}
	for i := range item.ZAxis {
		if err := r.i32s(&item.ZAxis[i]); err != nil {
			return nil, fmt.Errorf("z axis element %d: %w", i, err)
		}
	}
	if err := r.skip(reservedAfterZAxis); err != nil {
		return nil, err
	}
	var err error
	if item.ConditionFile, err = r.str(); err != nil {
		return nil, fmt.Errorf("condition file: %w", err)
	}
	count, err := r.i32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, &LengthError{Offset: r.pos(), Length: count, Kind: ErrInvalidLength}
	}
	for i := int32(0); i < count; i++ {
		m, err := d.decodeMeasurement(r)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i, err)
		}
		item.Measurements = append(item.Measurements, m)
	}
	if item.Name, err = r.str(); err != nil {
		return nil, fmt.Errorf("dataset name: %w", err)
	}
	if err := r.skip(reservedDatasetTrailer); err != nil {
		return nil, err
	}
	return item, nil
}

func (d *Decoder) decodeMeasurement(r *reader) (*Measurement, error) {
	m := &Measurement{}
	// Fixed 76-byte block: 7 ints, 2 floats, 1 int, 2 floats, 7 ints.
	if err := r.i32s(&m.StructType, &m.UnkType, &m.AtomNumber, &m.Line,
		&m.Unknown3, &m.SpectNo, &m.SpectName); err != nil {
		return nil, err
	}
	if err := r.f32s(&m.TwoD, &m.K); err != nil {
		return nil, err
	}
	if err := r.i32s(&m.Unknown4); err != nil {
		return nil, err
	}
	if err := r.f32s(&m.KV, &m.Current); err != nil {
		return nil, err
	}
	if err := r.i32s(&m.PeakPos, &m.Bias, &m.Gain, &m.DTime, &m.BLin,
		&m.Window, &m.Mode); err != nil {
		return nil, err
	}
	if err := r.skip(reservedAfterAcquisition); err != nil {
		return nil, err
	}
	if err := r.i32s(&m.WDSStartPos, &m.Steps); err != nil {
		return nil, err
	}
	if err := r.f32s(&m.StepSize, &m.DwellTime); err != nil {
		return nil, err
	}
	if err := r.i32s(&m.BeamSize); err != nil {
		return nil, err
	}
	size, err := r.i32()
	if err != nil {
		return nil, err
	}
	pos := r.pos()
	if size < 0 {
		return nil, &LengthError{Offset: pos, Length: size, Kind: ErrInvalidArrayLength}
	}
	left, err := r.remaining()
	if err != nil {
		return nil, err
	}
	if int64(size) > left {
		return nil, &LengthError{Offset: pos, Length: size, Kind: ErrInvalidArrayLength}
	}
	raw, err := r.bytes(int(size))
	if err != nil {
		return nil, err
	}
	m.Data = make([]float32, size/4)
	for i := range m.Data {
		m.Data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	if err := r.skip(reservedMeasurementTrailer); err != nil {
		return nil, err
	}
	return m, nil
}
