package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"conversion-wiz/internal/errors"
)

// Format identifies a definition file syntax
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

//go:embed default.yaml
var defaultCatalog []byte

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unsupported definition file extension %q", filepath.Ext(path)).
			WithContext("path", path)
	}
}

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatHCL:
		return FormatHCL, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unsupported definition format %q", s)
	}
}

// Load reads and parses a definition file, inferring the format from its extension
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads and parses a definition file in the given format
func LoadAs(path string, format Format) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("definition file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "reading %s", path)
	}
	return Parse(data, format, path)
}

// Parse decodes a definition. filename is used in diagnostics only.
func Parse(data []byte, format Format, filename string) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	switch format {
	case FormatJSON:
		def, err = parseJSON(data)
	case FormatYAML:
		def, err = parseYAML(data)
	case FormatHCL:
		def, err = parseHCL(data, filename)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported definition format %q", format)
	}
	if err != nil {
		return nil, errors.Parsing("parsing "+filename, err).WithContext("format", string(format))
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Default returns the built-in catalog
func Default() *Definition {
	def, err := parseYAML(defaultCatalog)
	if err != nil {
		panic("built-in catalog is malformed: " + err.Error())
	}
	return def
}

func parseJSON(data []byte) (*Definition, error) {
	def := &Definition{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(def); err != nil {
		return nil, err
	}
	return def, nil
}

func parseYAML(data []byte) (*Definition, error) {
	def := &Definition{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		// An empty document decodes to an empty definition
		if err == io.EOF {
			return def, nil
		}
		return nil, err
	}
	return def, nil
}
