// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type ServerlessConfig struct {
	Service   string      `yaml:"service"`
	Provider  Provider    `yaml:"provider"`
	Functions FunctionMap `yaml:"functions"`
	Custom    *Custom     `yaml:"custom"`
	RootPath  string      `yaml:"-"`
}

type Provider struct {
	Name    string `yaml:"name"`
	Runtime string `yaml:"runtime"`
	// Env keeps the raw node: validation must see malformed shapes
	// (non-mapping input, non-string values) that a typed map would
	// reject or reorder during decoding.
	Env     yaml.Node `yaml:"env"`
	Token   string    `yaml:"scwToken"`
	Project string    `yaml:"scwProject"`
}

type Custom struct {
	Containers ContainerMap `yaml:"containers"`
}

type FunctionSpec struct {
	Handler string    `yaml:"handler"`
	Runtime string    `yaml:"runtime"`
	Events  []Trigger `yaml:"events"`
}

type ContainerSpec struct {
	Directory string    `yaml:"directory"`
	Events    []Trigger `yaml:"events"`
}

// Trigger is a single-key mapping from trigger kind to its payload,
// e.g. {schedule: {rate: "1 * * * *"}}. The raw node is kept so the
// validator can reject zero-key and multi-key triggers.
type Trigger struct {
	node yaml.Node
}

func (t *Trigger) UnmarshalYAML(node *yaml.Node) error {
	t.node = *node
	return nil
}

// Kinds returns the trigger's kind names in declaration order, or nil
// if the trigger is not a mapping.
func (t *Trigger) Kinds() []string {
	if t.node.Kind != yaml.MappingNode {
		return nil
	}
	var kinds []string
	for i := 0; i+1 < len(t.node.Content); i += 2 {
		kinds = append(kinds, t.node.Content[i].Value)
	}
	return kinds
}

// Payload returns the value node for the given kind, or nil.
func (t *Trigger) Payload(kind string) *yaml.Node {
	if t.node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(t.node.Content); i += 2 {
		if t.node.Content[i].Value == kind {
			return t.node.Content[i+1]
		}
	}
	return nil
}

func Load(path string) (*ServerlessConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("error resolving service path: %w", err)
	}
	c.RootPath = root

	return c, nil
}

func Parse(b []byte) (*ServerlessConfig, error) {
	var c ServerlessConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}
	return &c, nil
}
