// internal/validate/env.go
package validate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// validateEnv checks the namespace environment variables. Absent input
// is fine (env vars are optional). A non-mapping node is a fatal error,
// not a content error. Non-string values each produce one message, in
// document order.
func validateEnv(env *yaml.Node) ([]string, error) {
	if env == nil || env.Kind == 0 || env.Tag == "!!null" {
		return nil, nil
	}

	if env.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("environment variables must be a string-keyed map")
	}

	var msgs []string
	for i := 0; i+1 < len(env.Content); i += 2 {
		key := env.Content[i].Value
		value := env.Content[i+1]
		if value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
			msgs = append(msgs, fmt.Sprintf("Variable %s: variable is invalid, environment variables may only be strings", key))
		}
	}
	return msgs, nil
}
