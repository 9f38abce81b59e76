package store

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/nconv/internal/scan"
)

// ExportData is the JSON shape of an exported sweep.
type ExportData struct {
	Conversion string    `json:"conversion"`
	Species    string    `json:"species"`
	InputName  string    `json:"input_name"`
	InputUnit  string    `json:"input_unit"`
	OutputName string    `json:"output_name"`
	OutputUnit string    `json:"output_unit"`
	Points     int       `json:"points"`
	Inputs     []float64 `json:"inputs"`
	Outputs    []float64 `json:"outputs"`
}

// ExportJSON writes res to w as indented JSON.
func ExportJSON(w io.Writer, res *scan.Result) error {
	data := ExportData{
		Conversion: res.Conversion,
		Species:    res.Species,
		InputName:  res.InputName,
		InputUnit:  res.InputUnit,
		OutputName: res.OutputName,
		OutputUnit: res.OutputUnit,
		Points:     len(res.Inputs),
		Inputs:     res.Inputs,
		Outputs:    res.Outputs,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes res to w as input,output rows.
func ExportCSV(w io.Writer, res *scan.Result) error {
	return gocsv.Marshal(points(res), w)
}
