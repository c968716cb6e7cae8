package camsx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/epmakit/camsx/pkg/sxfile"
	"github.com/epmakit/camsx/testutil"
)

func TestParseWDS(t *testing.T) {
	data := testutil.MinimalWDS("Pos 1", "10kv.qtiSet")

	file, err := ParseWDS(data)
	require.NoError(t, err)
	require.Len(t, file.Datasets, 1)
	assert.Equal(t, "Pos 1", file.Datasets[0].Name)
	assert.Empty(t, file.Basename)
}

func TestParseWDS_Error(t *testing.T) {
	_, err := ParseWDS([]byte("zzz not a peaksight file"))
	assert.ErrorIs(t, err, sxfile.ErrBadMagic)
}

func TestParseWDSWithContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseWDSWithContext(ctx, testutil.MinimalWDS("Pos 1", "c"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseWDSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_01.wdsDat")
	require.NoError(t, os.WriteFile(path, testutil.MinimalWDS("Pos 1", "c"), 0o644))

	file, err := ParseWDSFile(path)
	require.NoError(t, err)
	assert.Equal(t, "session_01", file.Basename)
	require.Len(t, file.Datasets, 1)
}

func TestParseWDSFile_Missing(t *testing.T) {
	_, err := ParseWDSFile(filepath.Join(t.TempDir(), "absent.wdsDat"))
	assert.Error(t, err)
}

func TestParseHeader(t *testing.T) {
	b := &testutil.Builder{}
	b.Header(10, 3, "overlap corrections").I32(0)

	hdr, err := ParseHeader(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(10), hdr.TypeCode)
	assert.Equal(t, "Peak overlap table", hdr.TypeName)
	assert.Equal(t, int32(3), hdr.Version)
	assert.Equal(t, "overlap corrections", hdr.Comment)
}

func TestWDSToJSON(t *testing.T) {
	out, err := WDSToJSON(testutil.MinimalWDS("Pos 1", "cond.qtiSet"))
	require.NoError(t, err)

	var decoded struct {
		Header struct {
			TypeName string `json:"type_name"`
		} `json:"header"`
		Datasets []struct {
			Name          string `json:"name"`
			ConditionFile string `json:"condition_file"`
		} `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "WDS results", decoded.Header.TypeName)
	require.Len(t, decoded.Datasets, 1)
	assert.Equal(t, "Pos 1", decoded.Datasets[0].Name)
	assert.Equal(t, "cond.qtiSet", decoded.Datasets[0].ConditionFile)
}

func TestNewParser_Options(t *testing.T) {
	p := NewParser(WithEncoding(charmap.Windows1250), WithDebugMode(true))
	file, err := p.ParseWDS(context.Background(), testutil.MinimalWDS("Pos 1", "c"))
	require.NoError(t, err)
	assert.Len(t, file.Datasets, 1)
}
