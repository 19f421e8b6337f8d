package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/timeline"
)

// Extensions lists the file extensions Read understands.
var Extensions = []string{".yaml", ".yml", ".json", ".xml", ".hcl"}

// Read decodes the document at path, choosing the format by extension.
func Read(path string) (*Scenario, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json", ".xml", ".hcl":
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrDocument, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".json":
		return DecodeJSON(f)
	case ".xml":
		return DecodeXML(f)
	case ".hcl":
		return DecodeHCL(f, path)
	default:
		return DecodeYAML(f)
	}
}

// LoadFile reads the document at path and loads it into tl.
func LoadFile(tl *timeline.Timeline, path string) error {
	doc, err := Read(path)
	if err != nil {
		return fmt.Errorf("read scenario %s: %w", path, err)
	}
	if err := Load(tl, doc); err != nil {
		return fmt.Errorf("load scenario %s: %w", path, err)
	}
	return nil
}
