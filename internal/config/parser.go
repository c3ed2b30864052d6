package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/themed/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Extensions lists the document extensions ParseDocument understands.
var Extensions = []string{".yaml", ".yml", ".json", ".jsonc", ".toml"}

// ParseDocument loads a theme document from disk, validates it, and returns
// the resulting model.
func ParseDocument(path string) (*Document, error) {
	var doc Document
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ParseTheme loads a bare theme file: a single mapping of theme keys.
func ParseTheme(path string) (map[string]any, error) {
	var raw map[string]any
	if err := decodeFile(path, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}

	data, err = normalize(path, data)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

// normalize turns JSONC and TOML input into text the YAML decoder accepts.
// JSONC keeps its line layout once comments are stripped, so YAML line
// numbers still point into the original file.
func normalize(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return data, nil
	case ".json", ".jsonc":
		return jsonc.ToJSON(data), nil
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, apperrors.NewParseError(path, tomlLine(err), err)
		}
		converted, err := yaml.Marshal(raw)
		if err != nil {
			return nil, apperrors.NewParseError(path, 0, err)
		}
		return converted, nil
	default:
		return nil, apperrors.NewParseError(path, 0, fmt.Errorf("unsupported document extension %q", ext))
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
