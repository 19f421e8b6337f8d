package engine

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/timeline"
	"github.com/ivlev/timeline/internal/config"
	"github.com/ivlev/timeline/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenario = `version: "1.0"
tracks:
  - name: x
    kind: float32
    keys:
      - {time: "00:00:00:000", value: 0, easefunc: 0, easetype: 0}
      - {time: "00:00:02:000", value: 1, easefunc: 0, easetype: 0}
  - name: pos
    kind: vec2
    keys:
      - {time: "00:00:01:000", value: [0, 0], easefunc: 3, easetype: 2}
      - {time: "00:00:03:400", value: [10, 20], easefunc: 0, easetype: 0}
  - name: unused
    kind: bool
    keys: []
`

func newTestProject(t *testing.T) (*Project, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(input, []byte(testScenario), 0644))

	cfg := config.Default()
	cfg.InputPath = input
	cfg.FPS = 10
	cfg.Workers = 2

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProject(cfg, logger, &out), &out
}

func TestRunWritesCSV(t *testing.T) {
	p, out := newTestProject(t)
	p.Config.OutputPath = filepath.Join(t.TempDir(), "out", "samples.csv")

	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "[+] ")

	f, err := os.Open(p.Config.OutputPath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	// 3.4s at 10 fps: frames 0..34, plus the header
	require.Len(t, records, 36)
	assert.Equal(t, []string{"frame", "time", "pos.x", "pos.y", "x"}, records[0])
	assert.Equal(t, "0.5", records[11][4])
	assert.Equal(t, []string{"34", "3.4", "10", "20", "1"}, records[35])
}

func TestRunSelectedTracksAndDuration(t *testing.T) {
	p, out := newTestProject(t)
	p.Config.Tracks = []string{"x"}
	p.Config.Duration = 1
	p.Config.Format = "yaml"

	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "frames: 11")
	assert.NotContains(t, out.String(), "pos")
}

func TestRunStatsReport(t *testing.T) {
	p, out := newTestProject(t)
	p.Config.ShowStats = true
	p.Config.BuildVersion = "test"
	p.Config.OutputPath = filepath.Join(t.TempDir(), "samples.csv")

	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "--- [PERFORMANCE REPORT] ---")
	assert.Contains(t, out.String(), "Build: test")
}

func TestRunAutoOutput(t *testing.T) {
	p, out := newTestProject(t)
	p.Config.OutputPath = config.AutoOutput
	p.Config.OutputDir = filepath.Join(t.TempDir(), "results")

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, p.Config.OutputDir, filepath.Dir(p.Config.OutputPath))
	name := filepath.Base(p.Config.OutputPath)
	assert.True(t, strings.HasPrefix(name, "scenario_"), name)
	assert.Equal(t, ".csv", filepath.Ext(name))
	assert.Contains(t, out.String(), p.Config.OutputPath)

	data, err := os.ReadFile(p.Config.OutputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "frame,time,pos.x,pos.y,x\n"))
}

func TestConvertAutoOutput(t *testing.T) {
	p, _ := newTestProject(t)
	p.Config.OutputPath = config.AutoOutput
	p.Config.OutputDir = t.TempDir()

	require.NoError(t, p.Convert())
	assert.Equal(t, ".yaml", filepath.Ext(p.Config.OutputPath))
	assert.Equal(t, p.Config.OutputDir, filepath.Dir(p.Config.OutputPath))

	tl := timeline.New()
	require.NoError(t, scenario.LoadFile(tl, p.Config.OutputPath))
	assert.Equal(t, []string{"pos", "unused", "x"}, tl.Names())
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	require.NoError(t, createFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "done\n")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "done\n", string(data))

	errWrite := errors.New("disk full")
	err = createFile(filepath.Join(dir, "partial.txt"), func(w io.Writer) error { return errWrite })
	assert.ErrorIs(t, err, errWrite)

	err = createFile(dir, func(w io.Writer) error {
		t.Error("write must not run when the file cannot be created")
		return nil
	})
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	p, _ := newTestProject(t)
	p.Config.Tracks = []string{"missing"}
	assert.ErrorContains(t, p.Run(context.Background()), `"missing"`)

	p, _ = newTestProject(t)
	p.Config.Tracks = []string{"unused"}
	assert.ErrorContains(t, p.Run(context.Background()), "no keyframes")

	p, _ = newTestProject(t)
	p.Config.FPS = 0
	assert.Error(t, p.Run(context.Background()))

	p, _ = newTestProject(t)
	p.Config.InputPath = filepath.Join(t.TempDir(), "absent.yaml")
	assert.ErrorIs(t, p.Run(context.Background()), os.ErrNotExist)
}

func TestConvertNormalizesToYAML(t *testing.T) {
	p, _ := newTestProject(t)
	hclPath := filepath.Join(t.TempDir(), "scenario.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(`
track "zoom" {
  kind = "float64"
  key {
    time     = "00:00:01:500"
    value    = 2.5
    easefunc = 9
    easetype = 1
  }
}
`), 0644))
	p.Config.InputPath = hclPath
	p.Config.OutputPath = filepath.Join(t.TempDir(), "converted.yaml")

	require.NoError(t, p.Convert())

	tl := timeline.New()
	require.NoError(t, scenario.LoadFile(tl, p.Config.OutputPath))
	kfs := timeline.TrackOf[timeline.Float64](tl, "zoom").Keyframes()
	require.Len(t, kfs, 1)
	assert.Equal(t, timeline.Float64(2.5), kfs[0].Value)
	assert.Equal(t, "bounce", kfs[0].Function.String())

	p.Config.OutputPath = filepath.Join(t.TempDir(), "converted.csv")
	assert.Error(t, p.Convert())
	p.Config.OutputPath = ""
	assert.Error(t, p.Convert())
}

func TestInspect(t *testing.T) {
	p, out := newTestProject(t)
	require.NoError(t, p.Inspect())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "pos")
	assert.Contains(t, lines[1], "vec2")
	assert.Contains(t, lines[1], "keys=2")
	assert.Contains(t, lines[2], "duration=00:00:00:000")
	assert.Contains(t, lines[4], "00:00:03:400")
}
