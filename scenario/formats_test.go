package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ivlev/timeline"
	"github.com/ivlev/timeline/easing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyframesX = `
<keyframes>
    <key>
        <easefunc>0</easefunc>
        <easetype>0</easetype>
        <time>00:00:00:524</time>
        <value>0.375000000</value>
    </key>
    <key>
        <easefunc>0</easefunc>
        <easetype>0</easetype>
        <time>00:00:00:826</time>
        <value>0.408691406</value>
    </key>
    <key>
        <easefunc>0</easefunc>
        <easetype>0</easetype>
        <time>00:00:01:034</time>
        <value>0.324999988</value>
    </key>
    <key>
        <easefunc>0</easefunc>
        <easetype>0</easetype>
        <time>00:00:01:459</time>
        <value>0.777343750</value>
    </key>
    <key>
        <easefunc>4</easefunc>
        <easetype>0</easetype>
        <time>00:00:02:123</time>
        <value>0.330175757</value>
    </key>
</keyframes>
`

func TestLoadTrackXML(t *testing.T) {
	tl := timeline.New()
	require.NoError(t, LoadTrackXML(tl, "x", "float32", strings.NewReader(keyframesX)))

	value := func(d time.Duration) float64 {
		return float64(timeline.ValueOf[timeline.Float32](tl, "x", d))
	}

	assert.Equal(t, 5, tl.Get("x").Len())
	assert.Equal(t, ms(2123), tl.MaxDuration())
	assert.Equal(t, 0.375, value(0))
	assert.Equal(t, 0.375, value(ms(524)))
	assert.InDelta(t, 0.330175757, value(10*time.Second), 1e-7)

	want := 0.77734375 + (0.541/0.664)*(0.330175757-0.77734375)
	assert.InDelta(t, want, value(2*time.Second), 1e-6)

	kfs := timeline.TrackOf[timeline.Float32](tl, "x").Keyframes()
	assert.Equal(t, easing.Cubic, kfs[4].Function)
}

func TestLoadTrackXMLErrors(t *testing.T) {
	tl := timeline.New()

	err := LoadTrackXML(tl, "x", "float32", strings.NewReader(strings.Replace(keyframesX, "00:00:00:826", "00:00:826", 1)))
	assert.ErrorIs(t, err, ErrTimecode)

	err = LoadTrackXML(tl, "x", "float32", strings.NewReader(strings.Replace(keyframesX, "<easefunc>4</easefunc>", "<easefunc>12</easefunc>", 1)))
	assert.ErrorIs(t, err, easing.ErrUnknownFunction)

	err = LoadTrackXML(tl, "x", "float32", strings.NewReader(strings.Replace(keyframesX, "<easefunc>4</easefunc>", "<easefunc>four</easefunc>", 1)))
	assert.ErrorIs(t, err, ErrDocument)

	err = LoadTrackXML(tl, "x", "float32", strings.NewReader("<keyframes><key>"))
	assert.ErrorIs(t, err, ErrDocument)

	assert.Equal(t, 0, tl.Len())
}

func TestMissingEasingIsRejected(t *testing.T) {
	tests := []struct {
		name   string
		decode func() (*Scenario, error)
	}{
		{"xml without easefunc", func() (*Scenario, error) {
			return DecodeXML(strings.NewReader(`<scenario><track name="x" kind="float32">
  <key><easefunc>0</easefunc><easetype>0</easetype><time>00:00:00:000</time><value>0</value></key>
  <key><easetype>0</easetype><time>00:00:01:000</time><value>1</value></key>
</track></scenario>`))
		}},
		{"json without easetype", func() (*Scenario, error) {
			return DecodeJSON(strings.NewReader(`{"tracks":[{"name":"x","kind":"float32","keys":[
				{"time":"00:00:00:000","value":0,"easefunc":0,"easetype":0},
				{"time":"00:00:01:000","value":1,"easefunc":4}]}]}`))
		}},
		{"yaml without either", func() (*Scenario, error) {
			return DecodeYAML(strings.NewReader("tracks:\n  - name: x\n    kind: float32\n    keys:\n      - {time: \"00:00:00:000\", value: 0, easefunc: 0, easetype: 0}\n      - {time: \"00:00:01:000\", value: 1}\n"))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.decode()
			require.NoError(t, err)

			tl := timeline.New()
			err = Load(tl, doc)
			assert.ErrorIs(t, err, ErrDocument)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, "x", le.Track)
			assert.Equal(t, 1, le.Key)
			assert.Equal(t, 0, tl.Len())
		})
	}

	err := LoadTrackXML(timeline.New(), "x", "float32", strings.NewReader(strings.Replace(keyframesX, "<easetype>0</easetype>", "", 1)))
	assert.ErrorIs(t, err, ErrDocument)
}

func TestDecodeXMLScenario(t *testing.T) {
	src := `<scenario version="1.0">
  <track name="pos" kind="vec3">
    <key><easefunc>3</easefunc><easetype>1</easetype><time>00:00:00:000</time><value>0 0 0</value></key>
    <key><easefunc>0</easefunc><easetype>0</easetype><time>00:00:01:000</time><value>1, 2, 3</value></key>
  </track>
  <track name="visible" kind="bool">
    <key><easefunc>0</easefunc><easetype>0</easetype><time>00:00:00:250</time><value>true</value></key>
  </track>
</scenario>`

	doc, err := DecodeXML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "1.0", doc.Version)

	tl := timeline.New()
	require.NoError(t, Load(tl, doc))
	assert.Equal(t, timeline.Vec3{X: 1, Y: 2, Z: 3}, timeline.ValueOf[timeline.Vec3](tl, "pos", 5*time.Second))
	assert.Equal(t, timeline.Vec3{X: 0.75, Y: 1.5, Z: 2.25}, timeline.ValueOf[timeline.Vec3](tl, "pos", 500*time.Millisecond))
	assert.Equal(t, timeline.Bool(true), timeline.ValueOf[timeline.Bool](tl, "visible", 0))
}

func TestDecodeYAML(t *testing.T) {
	src := `version: "1.0"
tracks:
  - name: x
    kind: float64
    keys:
      - time: "00:00:00:000"
        value: 0
        easefunc: 0
        easetype: 0
      - time: "00:00:03:400"
        value: 3.4
        easefunc: 0
        easetype: 0
  - name: tint
    kind: color
    keys:
      - time: "00:00:00:000"
        value: "#ff0000"
        easefunc: 0
        easetype: 0
      - time: "00:00:01:000"
        value: [0, 0, 1]
        easefunc: 0
        easetype: 0
`
	doc, err := DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)

	tl := timeline.New()
	require.NoError(t, Load(tl, doc))
	assert.Equal(t, ms(3400), tl.MaxDuration())
	assert.InDelta(t, 1.7, float64(timeline.ValueOf[timeline.Float64](tl, "x", ms(1700))), 1e-12)

	tint := timeline.ValueOf[timeline.Color](tl, "tint", ms(500))
	assert.InDelta(t, 0.5, tint.R, 1e-12)
	assert.InDelta(t, 0.5, tint.B, 1e-12)

	_, err = DecodeYAML(strings.NewReader("tracks: [unterminated"))
	assert.ErrorIs(t, err, ErrDocument)
}

func TestYAMLRoundTrip(t *testing.T) {
	tl := timeline.New()
	require.NoError(t, Load(tl, validDoc()))

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, FromTimeline(tl)))

	doc, err := DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, FromTimeline(tl), reencode(t, doc))
}

// reencode loads doc and describes it again, normalizing decoded value
// shapes (yaml ints, lists) back to the FromTimeline form.
func reencode(t *testing.T, doc *Scenario) *Scenario {
	t.Helper()
	tl := timeline.New()
	require.NoError(t, Load(tl, doc))
	return FromTimeline(tl)
}

func TestDecodeJSONKeepsIntegerPrecision(t *testing.T) {
	src := `{"version":"1.0","tracks":[{"name":"n","kind":"int64","keys":[
		{"time":"00:00:00:000","value":9007199254740993,"easefunc":0,"easetype":0},
		{"time":"00:00:01:000","value":[1],"easefunc":0,"easetype":0}]}]}`

	doc, err := DecodeJSON(strings.NewReader(src))
	require.NoError(t, err)

	tl := timeline.New()
	err = Load(tl, doc)
	assert.ErrorIs(t, err, ErrValue)

	doc.Tracks[0].Keys = doc.Tracks[0].Keys[:1]
	require.NoError(t, Load(tl, doc))
	assert.Equal(t, timeline.Int64(9007199254740993), timeline.ValueOf[timeline.Int64](tl, "n", 0))

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, FromTimeline(tl)))
	assert.Contains(t, buf.String(), "9007199254740993")

	_, err = DecodeJSON(strings.NewReader("{"))
	assert.ErrorIs(t, err, ErrDocument)
}

const hclScenario = `
version = "1.0"

track "pos" {
  kind = "vec2"
  key {
    time     = "00:00:00:000"
    value    = [0, 0]
    easefunc = 4
    easetype = 2
  }
  key {
    time     = "00:00:01:000"
    value    = [1, 2]
    easefunc = 0
    easetype = 0
  }
}

track "frame" {
  kind = "int64"
  key {
    time     = "00:00:02:000"
    value    = 4611686018427387904
    easefunc = 0
    easetype = 0
  }
}

track "tint" {
  kind = "color"
  key {
    time     = "00:00:00:000"
    value    = "#00ff00"
    easefunc = 0
    easetype = 0
  }
}
`

func TestDecodeHCL(t *testing.T) {
	doc, err := DecodeHCL(strings.NewReader(hclScenario), "scenario.hcl")
	require.NoError(t, err)
	assert.Equal(t, "1.0", doc.Version)
	require.Len(t, doc.Tracks, 3)

	tl := timeline.New()
	require.NoError(t, Load(tl, doc))
	assert.Equal(t, timeline.Vec2{X: 0.5, Y: 1}, timeline.ValueOf[timeline.Vec2](tl, "pos", 500*time.Millisecond))
	assert.Equal(t, timeline.Int64(1<<62), timeline.ValueOf[timeline.Int64](tl, "frame", 0))
	assert.Equal(t, "#00ff00", timeline.ValueOf[timeline.Color](tl, "tint", 0).Hex())
	assert.Equal(t, 2*time.Second, tl.MaxDuration())
}

func TestDecodeHCLErrors(t *testing.T) {
	_, err := DecodeHCL(strings.NewReader(`track "x" {`), "broken.hcl")
	assert.ErrorIs(t, err, ErrDocument)

	_, err = DecodeHCL(strings.NewReader(`track "x" {
  kind = "float32"
  key {
    time  = "00:00:00:000"
    value = 1
  }
}`), "missing.hcl")
	assert.ErrorIs(t, err, ErrDocument)

	_, err = DecodeHCL(strings.NewReader(`track "x" {
  kind = "float32"
  key {
    time     = "00:00:00:000"
    value    = null
    easefunc = 0
    easetype = 0
  }
}`), "null.hcl")
	assert.ErrorIs(t, err, ErrValue)
}

func TestLoadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	xmlDoc := `<scenario><track name="a" kind="float64"><key><easefunc>0</easefunc><easetype>0</easetype><time>00:00:01:000</time><value>2</value></key></track></scenario>`
	jsonDoc := `{"tracks":[{"name":"b","kind":"int32","keys":[{"time":"00:00:02:000","value":7,"easefunc":0,"easetype":0}]}]}`
	yamlDoc := "tracks:\n  - name: c\n    kind: bool\n    keys:\n      - {time: \"00:00:03:000\", value: true, easefunc: 0, easetype: 0}\n"

	tl := timeline.New()
	require.NoError(t, LoadFile(tl, write("a.XML", xmlDoc)))
	require.NoError(t, LoadFile(tl, write("b.json", jsonDoc)))
	require.NoError(t, LoadFile(tl, write("c.yml", yamlDoc)))
	require.NoError(t, LoadFile(tl, write("d.hcl", hclScenario)))

	assert.Equal(t, []string{"a", "b", "c", "frame", "pos", "tint"}, tl.Names())
	assert.Equal(t, 3*time.Second, tl.MaxDuration())

	err := LoadFile(tl, write("e.txt", ""))
	assert.ErrorIs(t, err, ErrDocument)
	err = LoadFile(tl, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteAndReadYAML(t *testing.T) {
	tl := timeline.New()
	require.NoError(t, Load(tl, validDoc()))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteYAML(FromTimeline(tl), path))

	doc, err := ReadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, FromTimeline(tl), reencode(t, doc))
}
