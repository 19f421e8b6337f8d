package scenario

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top-level structure of an HCL scenario:
//
//	version = "1.0"
//	track "pos" {
//	  kind = "vec2"
//	  key {
//	    time     = "00:00:01:000"
//	    value    = [1, 2]
//	    easefunc = 4
//	    easetype = 2
//	  }
//	}
type hclFile struct {
	Version string      `hcl:"version,optional"`
	Tracks  []*hclTrack `hcl:"track,block"`
}

type hclTrack struct {
	Name string    `hcl:"name,label"`
	Kind string    `hcl:"kind"`
	Keys []*hclKey `hcl:"key,block"`
}

type hclKey struct {
	Time     string    `hcl:"time"`
	Value    cty.Value `hcl:"value"`
	EaseFunc int       `hcl:"easefunc"`
	EaseType int       `hcl:"easetype"`
}

// DecodeHCL reads an HCL document from r. filename is only used in
// diagnostics.
func DecodeHCL(r io.Reader, filename string) (*Scenario, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %v", ErrDocument, filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(f.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %v", ErrDocument, filename, diags)
	}

	doc := &Scenario{Version: parsed.Version}
	for _, t := range parsed.Tracks {
		ts := TrackSpec{Name: t.Name, Kind: t.Kind, Keys: make([]Key, 0, len(t.Keys))}
		for i, k := range t.Keys {
			v, err := ctyToNative(k.Value)
			if err != nil {
				return nil, &LoadError{Track: t.Name, Key: i, Err: err}
			}
			ts.Keys = append(ts.Keys, Key{Time: k.Time, Value: v, EaseFunc: &k.EaseFunc, EaseType: &k.EaseType})
		}
		doc.Tracks = append(doc.Tracks, ts)
	}
	return doc, nil
}

// ctyToNative converts a key value into the shapes the value converters
// accept. Whole numbers become int64 so integer tracks keep full precision.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("%w: null value", ErrValue)
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		if bf := v.AsBigFloat(); bf.IsInt() {
			var n int64
			if err := gocty.FromCtyValue(v, &n); err == nil {
				return n, nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValue, err)
		}
		return f, nil

	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValue, err)
		}
		return b, nil

	case ty.IsListType() || ty.IsTupleType():
		list := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			list = append(list, native)
		}
		return list, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrValue, ty.FriendlyName())
	}
}
