package scenario

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ivlev/timeline"
)

type xmlKey struct {
	EaseFunc *int   `xml:"easefunc"`
	EaseType *int   `xml:"easetype"`
	Time     string `xml:"time"`
	Value    string `xml:"value"`
}

type xmlKeyframes struct {
	XMLName xml.Name `xml:"keyframes"`
	Keys    []xmlKey `xml:"key"`
}

type xmlTrack struct {
	Name string   `xml:"name,attr"`
	Kind string   `xml:"kind,attr"`
	Keys []xmlKey `xml:"key"`
}

type xmlScenario struct {
	XMLName xml.Name   `xml:"scenario"`
	Version string     `xml:"version,attr"`
	Tracks  []xmlTrack `xml:"track"`
}

func (k xmlKey) key() Key {
	return Key{
		Time:     strings.TrimSpace(k.Time),
		Value:    strings.TrimSpace(k.Value),
		EaseFunc: k.EaseFunc,
		EaseType: k.EaseType,
	}
}

func xmlKeys(in []xmlKey) []Key {
	keys := make([]Key, len(in))
	for i, k := range in {
		keys[i] = k.key()
	}
	return keys
}

// DecodeXML reads a multi-track document:
//
//	<scenario version="1.0">
//	  <track name="x" kind="float32">
//	    <key><easefunc>0</easefunc><easetype>0</easetype><time>00:00:00:524</time><value>0.375</value></key>
//	  </track>
//	</scenario>
//
// Vector values are written as numbers separated by spaces or commas.
func DecodeXML(r io.Reader) (*Scenario, error) {
	var x xmlScenario
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("%w: xml: %v", ErrDocument, err)
	}

	doc := &Scenario{Version: x.Version}
	for _, t := range x.Tracks {
		doc.Tracks = append(doc.Tracks, TrackSpec{Name: t.Name, Kind: t.Kind, Keys: xmlKeys(t.Keys)})
	}
	return doc, nil
}

// DecodeTrackXML reads a single-track <keyframes> body and describes it as
// a track called name holding values of the given kind.
func DecodeTrackXML(name, kind string, r io.Reader) (TrackSpec, error) {
	var x xmlKeyframes
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return TrackSpec{}, fmt.Errorf("%w: xml: %v", ErrDocument, err)
	}
	return TrackSpec{Name: name, Kind: kind, Keys: xmlKeys(x.Keys)}, nil
}

// LoadTrackXML decodes a <keyframes> body and adds it to tl as one track.
func LoadTrackXML(tl *timeline.Timeline, name, kind string, r io.Reader) error {
	ts, err := DecodeTrackXML(name, kind, r)
	if err != nil {
		return err
	}
	tr, err := BuildTrack(ts)
	if err != nil {
		return err
	}
	tl.Add(name, tr)
	return nil
}
