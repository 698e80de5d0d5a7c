// Package declaration reads network declarations from YAML, TOML or JSON
// documents.
package declaration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"wgc/internal/topology"
)

// Codec names a document encoding.
type Codec string

const (
	CodecYAML Codec = "yaml"
	CodecTOML Codec = "toml"
	CodecJSON Codec = "json"
)

// CodecForPath picks the codec from the file extension. Unknown extensions
// are read as YAML.
func CodecForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return CodecTOML
	case ".json":
		return CodecJSON
	default:
		return CodecYAML
	}
}

// Load reads and parses the declaration at path.
func Load(path string) (topology.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return topology.Declaration{}, fmt.Errorf("read declaration: %w", err)
	}
	return Parse(data, CodecForPath(path))
}

// Parse decodes a declaration document. It does not validate it.
func Parse(data []byte, codec Codec) (topology.Declaration, error) {
	var f fileNetwork
	var err error
	switch codec {
	case CodecYAML:
		err = yaml.Unmarshal(data, &f)
	case CodecTOML:
		_, err = toml.Decode(string(data), &f)
	case CodecJSON:
		err = json.Unmarshal(data, &f)
	default:
		return topology.Declaration{}, fmt.Errorf("unsupported codec %q", codec)
	}
	if err != nil {
		return topology.Declaration{}, fmt.Errorf("parse declaration: %w", err)
	}
	return f.toDeclaration(), nil
}
