package process

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/textops/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Manifest formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ProcessConfig describes one process tool as a host registers it.
type ProcessConfig struct {
	Name        string            `yaml:"name" json:"name"`
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args" json:"args"`
	Environment map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	Description string            `yaml:"description" json:"description"`
}

// ConfigFile is the layout of a host's tools.yaml.
type ConfigFile struct {
	Tools []ProcessConfig `yaml:"tools" json:"tools"`
}

// Manifest declares every tool as `<command> exec <name>`.
func Manifest(tools []domain.Tool, command string) ConfigFile {
	cfg := ConfigFile{Tools: make([]ProcessConfig, 0, len(tools))}
	for _, t := range tools {
		cfg.Tools = append(cfg.Tools, ProcessConfig{
			Name:        t.Name,
			Command:     command,
			Args:        []string{"exec", t.Name},
			Description: t.Description,
		})
	}
	return cfg
}

// WriteManifest encodes cfg to w as YAML or JSON.
func WriteManifest(w io.Writer, cfg ConfigFile, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported manifest format %q (want yaml or json)", format)
	}
}

// LoadTools reads a tools file (YAML or JSON) and returns the tools keyed by name.
// A missing file yields an empty map; entries without a name are skipped.
func LoadTools(path string) (map[string]ProcessConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]ProcessConfig{}, nil
		}
		return nil, domain.NewConfigParseError(path, err)
	}

	var cfg ConfigFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, domain.NewConfigParseError(path, err)
	}

	toolMap := make(map[string]ProcessConfig, len(cfg.Tools))
	for _, tool := range cfg.Tools {
		if tool.Name == "" {
			continue
		}
		toolMap[tool.Name] = tool
	}
	return toolMap, nil
}
