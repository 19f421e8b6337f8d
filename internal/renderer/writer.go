package renderer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ivlev/timeline"
	"github.com/ivlev/timeline/internal/system"
	"gopkg.in/yaml.v3"
)

// componentNames lists the per-component column suffixes of composite kinds.
var componentNames = map[timeline.Kind][]string{
	timeline.KindVec2:  {"x", "y"},
	timeline.KindVec3:  {"x", "y", "z"},
	timeline.KindVec4:  {"x", "y", "z", "w"},
	timeline.KindColor: {"r", "g", "b"},
}

// Header returns the CSV header: frame, time, then one column per track or
// per component of a composite track ("pos.x", "tint.r").
func Header(t *Table) []string {
	header := []string{"frame", "time"}
	for _, col := range t.Columns {
		parts, ok := componentNames[col.Kind]
		if !ok {
			header = append(header, col.Name)
			continue
		}
		for _, p := range parts {
			header = append(header, col.Name+"."+p)
		}
	}
	return header
}

// WriteCSV writes one record per frame. Time is in seconds.
func WriteCSV(w io.Writer, t *Table, rows *system.RowPool) error {
	cw := csv.NewWriter(w)
	header := Header(t)
	if err := cw.Write(header); err != nil {
		return err
	}

	for f, at := range t.Times {
		row := rows.Get(len(header))
		row = row[:0]
		row = append(row, strconv.Itoa(f), formatFloat(at.Seconds()))
		for _, col := range t.Columns {
			row = appendCells(row, col.Values[f])
		}
		err := cw.Write(row)
		rows.Put(row)
		if err != nil {
			return fmt.Errorf("frame %d: %w", f, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func appendCells(row []string, v any) []string {
	switch v := v.(type) {
	case timeline.Float32:
		return append(row, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case timeline.Float64:
		return append(row, formatFloat(float64(v)))
	case timeline.Int32:
		return append(row, strconv.FormatInt(int64(v), 10))
	case timeline.Int64:
		return append(row, strconv.FormatInt(int64(v), 10))
	case timeline.Bool:
		return append(row, strconv.FormatBool(bool(v)))
	case timeline.Vec2:
		return append(row, formatFloat(v.X), formatFloat(v.Y))
	case timeline.Vec3:
		return append(row, formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	case timeline.Vec4:
		return append(row, formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), formatFloat(v.W))
	case timeline.Color:
		return append(row, formatFloat(v.R), formatFloat(v.G), formatFloat(v.B))
	default:
		return append(row, fmt.Sprint(v))
	}
}

type yamlTrack struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Values []any  `yaml:"values,flow"`
}

type yamlTable struct {
	FPS    int         `yaml:"fps"`
	Frames int         `yaml:"frames"`
	Times  []float64   `yaml:"times,flow"`
	Tracks []yamlTrack `yaml:"tracks"`
}

// WriteYAML writes the table column by column.
func WriteYAML(w io.Writer, t *Table) error {
	out := yamlTable{
		FPS:    t.FPS,
		Frames: len(t.Times),
		Times:  make([]float64, len(t.Times)),
		Tracks: make([]yamlTrack, len(t.Columns)),
	}
	for i, at := range t.Times {
		out.Times[i] = at.Seconds()
	}
	for i, col := range t.Columns {
		vals := make([]any, len(col.Values))
		for f, v := range col.Values {
			vals[f] = plainValue(v)
		}
		out.Tracks[i] = yamlTrack{Name: col.Name, Kind: col.Kind.String(), Values: vals}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

// plainValue converts a sample into builtin types for encoding.
func plainValue(v any) any {
	switch v := v.(type) {
	case timeline.Float32:
		return float64(v)
	case timeline.Float64:
		return float64(v)
	case timeline.Int32:
		return int64(v)
	case timeline.Int64:
		return int64(v)
	case timeline.Bool:
		return bool(v)
	case timeline.Vec2:
		return []float64{v.X, v.Y}
	case timeline.Vec3:
		return []float64{v.X, v.Y, v.Z}
	case timeline.Vec4:
		return []float64{v.X, v.Y, v.Z, v.W}
	case timeline.Color:
		return []float64{v.R, v.G, v.B}
	default:
		return v
	}
}
