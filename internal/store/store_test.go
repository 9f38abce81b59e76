package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/nconv/internal/scan"
)

func sampleResult(t *testing.T) *scan.Result {
	t.Helper()
	res, err := scan.Run("wavelength-energy", "neutron", scan.Grid(1e-10, 4e-10, 8))
	require.NoError(t, err)
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	res := sampleResult(t)
	runID, err := st.Save(res)
	require.NoError(t, err)
	require.NotEmpty(t, runID)
	assert.True(t, strings.HasPrefix(runID, "wavelength-energy_"))

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "wavelength-energy", meta.Conversion)
	assert.Equal(t, "neutron", meta.Species)
	assert.Equal(t, 8, meta.Points)
	assert.Equal(t, "meV", meta.OutputUnit)

	pts, err := st.LoadPoints(runID)
	require.NoError(t, err)
	require.Len(t, pts, 8)
	for i, p := range pts {
		assert.InEpsilon(t, res.Inputs[i], p.Input, 1e-12)
		assert.InEpsilon(t, res.Outputs[i], p.Output, 1e-12)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	metas, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, metas)

	_, err = st.Save(sampleResult(t))
	require.NoError(t, err)

	metas, err = st.List()
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "wavelength-energy", metas[0].Conversion)
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	_, err := st.Load("no-such-run")
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult(t)
	require.NoError(t, ExportJSON(&buf, res))

	out := buf.String()
	assert.Contains(t, out, `"conversion": "wavelength-energy"`)
	assert.Contains(t, out, `"species": "neutron"`)
	assert.Contains(t, out, `"points": 8`)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult(t)
	require.NoError(t, ExportCSV(&buf, res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+len(res.Inputs))
	assert.Equal(t, "input,output", lines[0])
}
