// Package file loads and saves machine definitions as YAML or JSON documents.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the document encoding of a definition.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from the file extension. Anything but .json is YAML.
func FormatOf(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads the definition stored at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Decode(data, FormatOf(path))
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Decode parses a document. Scalars are decoded weakly, so numeric state ids
// and symbols become strings and a single push symbol becomes a list.
func Decode(data []byte, format Format) (Definition, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}

	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &def,
		DecodeHook:       mapstructure.DecodeHookFuncType(moveHook),
	})
	if err != nil {
		return Definition{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Definition{}, fmt.Errorf("failed to decode definition: %w", err)
	}
	if err := def.check(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// moveHook accepts the long spellings of tape moves.
func moveHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(domain.Move("")) {
		return data, nil
	}
	if m, ok := domain.ParseMove(reflect.ValueOf(data).String()); ok {
		return m, nil
	}
	return data, nil
}

// Encode renders def in the given format.
func Encode(def Definition, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal definition: %w", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(def)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal definition: %w", err)
		}
		return data, nil
	}
}

// Save writes def to path atomically, choosing the format by extension.
func Save(path string, def Definition) error {
	data, err := Encode(def, FormatOf(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename definition file: %w", err)
	}
	return nil
}
