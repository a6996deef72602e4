package gys

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// parseLonghand parses the YAML-ish longhand surface: either a single
// "name: { key: value, … }" mapping, or a "name: { steps: [ step, … ] }"
// wrapper (the canonical shape is "pipeline_from_gys", but any step whose
// mapping contains a "steps" sequence is treated the same way, so a
// macro's own longhand definition can itself be multi-step without a
// special-cased wrapper name).
//
// Comment handling is delegated to yaml.v3, which already strips "# ..."
// to end of line during scalar/mapping parsing.
func parseLonghand(text string) ([]Step, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, ErrMalformedYAML
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, ErrMalformedYAML
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode || len(doc.Content) != 2 {
		return nil, ErrMalformedYAML
	}

	name := doc.Content[0].Value
	step, err := parseYAMLStepNode(name, doc.Content[1])
	if err != nil {
		return nil, err
	}
	return []Step{step}, nil
}

// parseYAMLStepNode converts one "name: { ... }" mapping entry into a
// Step. A "steps" key within the mapping is treated specially: its
// sequence of single-key mappings becomes the Step's children, and every
// other key becomes a plain Arg on the Step itself.
func parseYAMLStepNode(name string, value *yaml.Node) (Step, error) {
	if value.Kind != yaml.MappingNode {
		return Step{}, ErrMalformedYAML
	}

	var args []Arg
	var children []Step
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		val := value.Content[i+1]

		if key == "steps" {
			if val.Kind != yaml.SequenceNode {
				return Step{}, ErrMalformedYAML
			}
			for _, item := range val.Content {
				if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
					return Step{}, ErrMalformedYAML
				}
				child, err := parseYAMLStepNode(item.Content[0].Value, item.Content[1])
				if err != nil {
					return Step{}, err
				}
				children = append(children, child)
			}
			continue
		}

		if val.Kind != yaml.ScalarNode {
			return Step{}, ErrMalformedYAML
		}
		value := val.Value
		// A compact "key:value" entry (no space after the colon) reaches
		// here as one plain key with an empty value; split it back apart.
		if value == "" {
			if k, v, ok := strings.Cut(key, ":"); ok {
				key, value = k, v
			}
		}
		args = append(args, Arg{Key: key, Value: value})
	}

	return Step{Name: name, Args: args, Steps: children}, nil
}
