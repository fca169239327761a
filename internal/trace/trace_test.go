package trace_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suprax-arch/tage/internal/branch"
	"github.com/suprax-arch/tage/internal/trace"
)

func TestReader_ParsesPlainTextLines(t *testing.T) {
	input := "0x1000 1 1 0x2000\n0x1008 0 0 0\n"
	r, err := trace.NewReader(bytes.NewBufferString(input))
	require.NoError(t, err)
	defer r.Close()

	rec1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1000), rec1.Address)
	assert.Equal(t, branch.Flags(1), rec1.Flags)
	assert.True(t, rec1.Taken)
	assert.Equal(t, uint64(0x2000), rec1.Target)

	rec2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1008), rec2.Address)
	assert.False(t, rec2.Taken)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_SkipsBlankAndCommentLines(t *testing.T) {
	input := "# a trace file\n\n0x10 0 1 0\n\n# trailing comment\n"
	r, err := trace.NewReader(bytes.NewBufferString(input))
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x10), rec.Address)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_AcceptsDecimalFields(t *testing.T) {
	input := "4096 1 taken 8192\n"
	r, err := trace.NewReader(bytes.NewBufferString(input))
	require.NoError(t, err)
	defer r.Close()

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), rec.Address)
	assert.True(t, rec.Taken)
	assert.Equal(t, uint64(8192), rec.Target)
}

func TestReader_RejectsMalformedLine(t *testing.T) {
	input := "0x10 0 1\n" // missing target field
	r, err := trace.NewReader(bytes.NewBufferString(input))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.Error(t, err)
}

func TestReader_TransparentlyDecompressesGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("0x1 1 1 0\n0x2 1 0 0\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	r, err := trace.NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	rec1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1), rec1.Address)

	rec2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x2), rec2.Address)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRecord_InfoProjectsPredictableFields(t *testing.T) {
	rec := trace.Record{Address: 0x99, Flags: branch.Conditional, Taken: true, Target: 0x100}
	info := rec.Info()
	assert.Equal(t, uint64(0x99), info.Address)
	assert.Equal(t, branch.Conditional, info.Flags)
}

func TestReader_EmptyStreamIsImmediateEOF(t *testing.T) {
	r, err := trace.NewReader(bytes.NewBufferString(""))
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
