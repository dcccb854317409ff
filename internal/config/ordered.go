// internal/config/ordered.go
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FunctionMap is a name -> FunctionSpec mapping that preserves the
// declaration order of the YAML document. Go maps iterate randomly, and
// validation output must follow the order the user wrote.
type FunctionMap struct {
	names []string
	specs map[string]*FunctionSpec
}

func (m *FunctionMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("functions must be a mapping, got %s", nodeKindName(node.Kind))
	}

	m.names = nil
	m.specs = make(map[string]*FunctionSpec)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		spec := &FunctionSpec{}
		if err := node.Content[i+1].Decode(spec); err != nil {
			return fmt.Errorf("error decoding function %s: %w", name, err)
		}
		m.names = append(m.names, name)
		m.specs[name] = spec
	}
	return nil
}

func (m *FunctionMap) Len() int {
	return len(m.names)
}

func (m *FunctionMap) Names() []string {
	return m.names
}

func (m *FunctionMap) Get(name string) *FunctionSpec {
	return m.specs[name]
}

// ContainerMap mirrors FunctionMap for custom containers.
type ContainerMap struct {
	names []string
	specs map[string]*ContainerSpec
}

func (m *ContainerMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("containers must be a mapping, got %s", nodeKindName(node.Kind))
	}

	m.names = nil
	m.specs = make(map[string]*ContainerSpec)

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		spec := &ContainerSpec{}
		if err := node.Content[i+1].Decode(spec); err != nil {
			return fmt.Errorf("error decoding container %s: %w", name, err)
		}
		m.names = append(m.names, name)
		m.specs[name] = spec
	}
	return nil
}

func (m *ContainerMap) Len() int {
	return len(m.names)
}

func (m *ContainerMap) Names() []string {
	return m.names
}

func (m *ContainerMap) Get(name string) *ContainerSpec {
	return m.specs[name]
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
