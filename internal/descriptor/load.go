package descriptor

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/score-to-terraform/score2tf/internal/result"
)

// Load reads and parses the descriptor at path.
func Load(path string) (*Descriptor, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &result.ParseError{Path: path, Err: err}
	}
	d, err := Parse(data)
	if err != nil {
		var pe *result.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Parse parses a descriptor document. The root must be a mapping; the
// "metadata", "workloads" and "resources" sections are optional.
func Parse(data []byte) (*Descriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &result.ParseError{Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, &result.ParseError{Err: errors.New("empty document")}
	}
	doc := resolve(root.Content[0])
	if doc.Kind != yaml.MappingNode {
		return nil, &result.ParseError{Err: fmt.Errorf("document root must be a mapping, got %s", kindName(doc))}
	}

	d := &Descriptor{}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i].Value, resolve(doc.Content[i+1])
		var err error
		switch key {
		case "metadata":
			d.Metadata, err = d.section(key, val)
		case "workloads":
			d.Workloads, err = d.workloads(val)
		case "resources":
			d.Resources, err = d.section(key, val)
		}
		if err != nil {
			return nil, &result.ParseError{Err: fmt.Errorf("%s: %w", key, err)}
		}
	}
	return d, nil
}

func (d *Descriptor) section(key string, n *yaml.Node) (map[string]any, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		d.Issues = append(d.Issues, fmt.Sprintf("%s must be a mapping, got %s", key, kindName(n)))
		return nil, nil
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil, err
	}
	m, _ := Normalize(raw).(map[string]any)
	return m, nil
}

func (d *Descriptor) workloads(n *yaml.Node) ([]Workload, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		d.Issues = append(d.Issues, "workloads must be a mapping, got "+kindName(n))
		return nil, nil
	}
	out := make([]Workload, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var raw any
		if err := n.Content[i+1].Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", n.Content[i].Value, err)
		}
		m, _ := Normalize(raw).(map[string]any)
		out = append(out, Workload{Name: n.Content[i].Value, Properties: m})
	}
	return out, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		if isNull(n) {
			return "null"
		}
		return "scalar"
	default:
		return "unknown node"
	}
}
